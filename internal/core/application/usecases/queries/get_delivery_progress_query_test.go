package queries_test

import (
	"testing"

	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDeliveryProgressQuery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetDeliveryProgressQuery(id)
	require.NoError(t, err)
	assert.Equal(t, id, query.DeliveryID())
	require.NoError(t, query.Validate())
}

func TestNewGetDeliveryProgressQuery_InvalidDeliveryID(t *testing.T) {
	_, err := queries.NewGetDeliveryProgressQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetDeliveryProgressQueryHandler_Handle_ValidationError(t *testing.T) {
	h := queries.NewGetDeliveryProgressQueryHandler(nil)
	_, err := h.Handle(t.Context(), queries.GetDeliveryProgressQuery{}) // not constructed properly
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDeliveryProgressQueryIsNotConstructed)
}
