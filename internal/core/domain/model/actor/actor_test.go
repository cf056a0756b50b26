package actor_test

import (
	"testing"

	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	role, err := actor.RoleFromString("shipper")
	require.NoError(t, err)
	assert.Equal(t, actor.RoleShipper, role)

	role, err = actor.RoleFromString("admin")
	require.NoError(t, err)
	assert.Equal(t, actor.RoleAdmin, role)

	_, err = actor.RoleFromString("transporter")
	require.Error(t, err)
}

func TestNewActor(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		a, err := actor.NewActor(actor.RoleAdmin, id)

		require.NoError(t, err)
		assert.True(t, a.IsAdmin())
		assert.False(t, a.IsShipper())
		assert.True(t, a.SubjectID().IsEqual(id))
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := actor.NewActor(actor.RoleUnknown, kernel.NewUUID())
		require.Error(t, err)
	})

	t.Run("zero subject rejected", func(t *testing.T) {
		_, err := actor.NewActor(actor.RoleShipper, kernel.UUID{})
		require.Error(t, err)
	})
}

func TestActor_Owns(t *testing.T) {
	shipperID := kernel.NewUUID()

	shipper, err := actor.NewActor(actor.RoleShipper, shipperID)
	require.NoError(t, err)
	assert.True(t, shipper.Owns(shipperID))
	assert.False(t, shipper.Owns(kernel.NewUUID()))

	// Admins never own shipments, they act by role.
	admin, err := actor.NewActor(actor.RoleAdmin, shipperID)
	require.NoError(t, err)
	assert.False(t, admin.Owns(shipperID))
}
