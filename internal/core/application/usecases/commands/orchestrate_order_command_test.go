package commands_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/application/usecases/commands"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"
)

func TestNewOrchestrateOrderCommand(t *testing.T) {
	t.Run("should create a valid command", func(t *testing.T) {
		cmd := buildCommand(t, kernel.NewUUID())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("should reject an order without lines", func(t *testing.T) {
		_, err := commands.NewOrchestrateOrderCommand(
			kernel.NewUUID(), nil,
			mustPincode(t, "110042"), mustPincode(t, "400001"),
			order.Standard, order.Prepaid, decimal.Zero, 2, testPlacedAt, "",
		)
		assert.Error(t, err)
	})

	t.Run("should reject a COD order without an amount", func(t *testing.T) {
		_, err := commands.NewOrchestrateOrderCommand(
			kernel.NewUUID(), []order.OrderLine{mustLine(t, "SKU-A", 1)},
			mustPincode(t, "110042"), mustPincode(t, "400001"),
			order.Standard, order.COD, decimal.Zero, 2, testPlacedAt, "",
		)
		assert.Error(t, err)
	})

	t.Run("should reject a zero placement time", func(t *testing.T) {
		_, err := commands.NewOrchestrateOrderCommand(
			kernel.NewUUID(), []order.OrderLine{mustLine(t, "SKU-A", 1)},
			mustPincode(t, "110042"), mustPincode(t, "400001"),
			order.Standard, order.Prepaid, decimal.Zero, 2, time.Time{}, "",
		)
		assert.Error(t, err)
	})

	t.Run("should reject a zero value command", func(t *testing.T) {
		var cmd commands.OrchestrateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrOrchestrateOrderCommandIsNotConstructed)
	})
}

func TestNewAllocateStockCommand(t *testing.T) {
	t.Run("should create a valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		cmd, err := commands.NewAllocateStockCommand(orderID)
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
	})

	t.Run("should reject a zero value command", func(t *testing.T) {
		var cmd commands.AllocateStockCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrAllocateStockCommandIsNotConstructed)
	})
}
