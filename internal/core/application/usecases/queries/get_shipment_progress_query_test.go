package queries_test

import (
	"testing"

	"freightflow/internal/core/application/usecases/queries"
	"freightflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentProgressQuery_Valid(t *testing.T) {
	query, err := queries.NewGetShipmentProgressQuery(adminActor(t), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetShipmentProgressQuery_MissingShipmentID(t *testing.T) {
	_, err := queries.NewGetShipmentProgressQuery(shipperActor(t), kernel.UUID{})
	require.Error(t, err)
}

func TestGetShipmentProgressQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipmentProgressQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentProgressQueryIsNotConstructed)
}
