package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/shipment"
	"freightflow/internal/pkg/errs"
)

func TestNewRequestShipmentCommand(t *testing.T) {
	shipperID := kernel.NewUUID()

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewRequestShipmentCommand(
			shipperActor(t, shipperID), kernel.NewUUID(), validDetails(), "EWB-4471")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, shipperID, cmd.Actor().SubjectID())
		assert.Equal(t, "EWB-4471", cmd.EwayBillRef())
	})

	t.Run("admin cannot request a shipment", func(t *testing.T) {
		_, err := commands.NewRequestShipmentCommand(
			adminActor(t), kernel.NewUUID(), validDetails(), "")

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("rejects invalid details", func(t *testing.T) {
		details := validDetails()
		details.Cargo.WeightKg = 0

		_, err := commands.NewRequestShipmentCommand(
			shipperActor(t, shipperID), kernel.NewUUID(), details, "")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects conditional field gaps", func(t *testing.T) {
		details := validDetails()
		details.Cargo.MaterialType = shipment.MaterialTypeOthers
		details.Cargo.CustomMaterialType = ""

		_, err := commands.NewRequestShipmentCommand(
			shipperActor(t, shipperID), kernel.NewUUID(), details, "")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		cmd := commands.RequestShipmentCommand{}
		assert.ErrorIs(t, cmd.Validate(), commands.ErrRequestShipmentCommandIsNotConstructed)
	})
}
