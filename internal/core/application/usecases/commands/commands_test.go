package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceOrderCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewAdvanceOrderCommand(" O1 ", "shipped", " FedEx ")
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "O1", cmd.OrderID())
		assert.Equal(t, order.Shipped, cmd.Status())
		assert.Equal(t, "FedEx", cmd.Carrier())
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := commands.NewAdvanceOrderCommand("", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := commands.NewAdvanceOrderCommand("O1", "LOST", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewSeedOrderCommand(t *testing.T) {
	cmd, err := commands.NewSeedOrderCommand(orderRecord("O1"))
	require.NoError(t, err)
	assert.Equal(t, "O1", cmd.OrderID())
	assert.Equal(t, order.Open, cmd.Order().Status())

	bad := orderRecord("O1")
	bad.Product.Quantity = 0
	_, err = commands.NewSeedOrderCommand(bad)
	require.Error(t, err)
}
