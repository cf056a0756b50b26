package queries_test

import (
	"testing"

	"freightflow/internal/core/application/usecases/queries"
	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shipperActor(t *testing.T) actor.Actor {
	t.Helper()
	act, err := actor.NewActor(actor.RoleShipper, kernel.NewUUID())
	require.NoError(t, err)
	return act
}

func adminActor(t *testing.T) actor.Actor {
	t.Helper()
	act, err := actor.NewActor(actor.RoleAdmin, kernel.NewUUID())
	require.NoError(t, err)
	return act
}

func TestNewGetShipmentsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetShipmentsQuery(shipperActor(t))
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetShipmentsQuery_InvalidActor(t *testing.T) {
	_, err := queries.NewGetShipmentsQuery(actor.Actor{})
	require.Error(t, err)
}

func TestGetShipmentsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipmentsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentsQueryIsNotConstructed)
}
