package order_test

import (
	"testing"
	"time"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPincode(t *testing.T, value string) kernel.Pincode {
	t.Helper()
	pin, err := kernel.NewPincode(value)
	require.NoError(t, err)
	return pin
}

func mustLine(t *testing.T, sku string, qty int) order.OrderLine {
	t.Helper()
	line, err := order.NewOrderLine(sku, qty)
	require.NoError(t, err)
	return line
}

func validOrder(t *testing.T) *order.Order {
	t.Helper()
	ord, err := order.NewOrder(
		kernel.NewUUID(),
		[]order.OrderLine{mustLine(t, "SKU-1", 10)},
		mustPincode(t, "110042"),
		mustPincode(t, "400001"),
		order.Standard,
		order.Prepaid,
		decimal.Zero,
		2.5,
		time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		"",
	)
	require.NoError(t, err)
	return ord
}

func TestNewOrderLine(t *testing.T) {
	t.Run("creates valid line", func(t *testing.T) {
		line, err := order.NewOrderLine("SKU-TSHIRT-M", 3)

		require.NoError(t, err)
		assert.Equal(t, "SKU-TSHIRT-M", line.SKU())
		assert.Equal(t, 3, line.Qty())
		require.NoError(t, line.Validate())
	})

	t.Run("rejects empty sku", func(t *testing.T) {
		_, err := order.NewOrderLine("", 3)

		require.Error(t, err)
	})

	t.Run("rejects non positive quantity", func(t *testing.T) {
		for _, qty := range []int{0, -1} {
			_, err := order.NewOrderLine("SKU-1", qty)

			require.Error(t, err)
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var line order.OrderLine

		require.ErrorIs(t, line.Validate(), order.ErrOrderLineIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order in received stage", func(t *testing.T) {
		ord := validOrder(t)

		assert.Equal(t, order.OrderReceived, ord.Stage())
		assert.Len(t, ord.Lines(), 1)
		assert.Equal(t, "1", ord.OriginPincode().Zone())
		assert.Equal(t, "4", ord.DestinationPincode().Zone())
	})

	t.Run("rejects order without lines", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			nil,
			mustPincode(t, "110042"),
			mustPincode(t, "400001"),
			order.Standard,
			order.Prepaid,
			decimal.Zero,
			2.5,
			time.Now(),
			"",
		)

		require.ErrorIs(t, err, order.ErrOrderLinesAreRequired)
	})

	t.Run("rejects COD order without amount", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			[]order.OrderLine{mustLine(t, "SKU-1", 1)},
			mustPincode(t, "110042"),
			mustPincode(t, "400001"),
			order.Standard,
			order.COD,
			decimal.Zero,
			2.5,
			time.Now(),
			"",
		)

		require.ErrorIs(t, err, order.ErrCODAmountIsRequired)
	})

	t.Run("rejects negative weight", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			[]order.OrderLine{mustLine(t, "SKU-1", 1)},
			mustPincode(t, "110042"),
			mustPincode(t, "400001"),
			order.Standard,
			order.Prepaid,
			decimal.Zero,
			-1,
			time.Now(),
			"",
		)

		require.Error(t, err)
	})

	t.Run("rejects zero placement time", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			[]order.OrderLine{mustLine(t, "SKU-1", 1)},
			mustPincode(t, "110042"),
			mustPincode(t, "400001"),
			order.Standard,
			order.Prepaid,
			decimal.Zero,
			2.5,
			time.Time{},
			"",
		)

		require.Error(t, err)
	})

	t.Run("nil and zero value orders fail validation", func(t *testing.T) {
		var ord *order.Order
		require.ErrorIs(t, ord.Validate(), order.ErrOrderIsNotConstructed)

		require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AdvanceTo(t *testing.T) {
	t.Run("advances through engine stages", func(t *testing.T) {
		ord := validOrder(t)

		require.NoError(t, ord.AdvanceTo(order.InventoryAllocation))
		require.NoError(t, ord.AdvanceTo(order.PartnerSelection))
		assert.Equal(t, order.PartnerSelection, ord.Stage())
	})

	t.Run("rejects stage jumps", func(t *testing.T) {
		ord := validOrder(t)

		err := ord.AdvanceTo(order.Dispatch)

		require.Error(t, err)
		assert.Equal(t, order.OrderReceived, ord.Stage())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores order with persisted stage", func(t *testing.T) {
		ord, err := order.RestoreOrder(
			kernel.NewUUID(),
			[]order.OrderLine{mustLine(t, "SKU-1", 4)},
			mustPincode(t, "110042"),
			mustPincode(t, "400001"),
			order.Express,
			order.COD,
			decimal.NewFromInt(1499),
			1.2,
			time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			"DEL-WH",
			order.PartnerSelection,
		)

		require.NoError(t, err)
		assert.Equal(t, order.PartnerSelection, ord.Stage())
		assert.Equal(t, "DEL-WH", ord.PreferredWarehouse())
		assert.True(t, ord.CODAmount().Equal(decimal.NewFromInt(1499)))
	})

	t.Run("rejects invalid persisted stage", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(),
			[]order.OrderLine{mustLine(t, "SKU-1", 4)},
			mustPincode(t, "110042"),
			mustPincode(t, "400001"),
			order.Standard,
			order.Prepaid,
			decimal.Zero,
			1.2,
			time.Now(),
			"",
			order.StageUnknown,
		)

		require.Error(t, err)
	})
}

func TestOrderType(t *testing.T) {
	t.Run("tat reductions per service level", func(t *testing.T) {
		assert.Equal(t, 0, order.Standard.TATReductionDays())
		assert.Equal(t, 1, order.Express.TATReductionDays())
		assert.Equal(t, 2, order.Priority.TATReductionDays())
	})

	t.Run("round trips through string form", func(t *testing.T) {
		for _, typ := range []order.OrderType{order.Standard, order.Express, order.Priority} {
			parsed, err := order.OrderTypeFromString(typ.String())

			require.NoError(t, err)
			assert.Equal(t, typ, parsed)
		}
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		require.Error(t, order.OrderTypeUnknown.Validate())

		_, err := order.OrderTypeFromString("SAME_DAY")
		require.Error(t, err)
	})
}

func TestPaymentMode(t *testing.T) {
	t.Run("round trips through string form", func(t *testing.T) {
		for _, mode := range []order.PaymentMode{order.Prepaid, order.COD} {
			parsed, err := order.PaymentModeFromString(mode.String())

			require.NoError(t, err)
			assert.Equal(t, mode, parsed)
		}
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		require.Error(t, order.PaymentModeUnknown.Validate())
	})
}
