package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/adapters/out/memory"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/partner"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/stock"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/ports"
)

func mustPincode(t *testing.T, value string) kernel.Pincode {
	t.Helper()
	pin, err := kernel.NewPincode(value)
	require.NoError(t, err)
	return pin
}

func mustRange(t *testing.T, from string, to string) kernel.PincodeRange {
	t.Helper()
	r, err := kernel.NewPincodeRange(mustPincode(t, from), mustPincode(t, to))
	require.NoError(t, err)
	return r
}

func mustLine(t *testing.T, sku string, qty int) order.OrderLine {
	t.Helper()
	line, err := order.NewOrderLine(sku, qty)
	require.NoError(t, err)
	return line
}

type orderParams struct {
	lines              []order.OrderLine
	orderType          order.OrderType
	placedAt           time.Time
	preferredWarehouse string
}

func buildOrder(t *testing.T, params orderParams) *order.Order {
	t.Helper()
	if params.lines == nil {
		params.lines = []order.OrderLine{mustLine(t, "SKU-A", 5)}
	}
	if params.orderType == order.OrderTypeUnknown {
		params.orderType = order.Standard
	}
	if params.placedAt.IsZero() {
		params.placedAt = time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	}
	ord, err := order.NewOrder(
		kernel.NewUUID(),
		params.lines,
		mustPincode(t, "110042"),
		mustPincode(t, "400001"),
		params.orderType,
		order.Prepaid,
		decimal.Zero,
		2,
		params.placedAt,
		params.preferredWarehouse,
	)
	require.NoError(t, err)
	return ord
}

// failingRouteTable simulates route reference downtime.
type failingRouteTable struct{ err error }

func (f failingRouteTable) Route(context.Context, kernel.Pincode, kernel.Pincode) (ports.RouteEntry, bool, error) {
	return ports.RouteEntry{}, false, f.err
}

// testInventoryStore backs the engine tests with the in-memory
// inventory adapter and adds per-key reservation fault injection plus
// bookkeeping over the seeded positions.
type testInventoryStore struct {
	*memory.InventoryStore

	mu   sync.Mutex
	keys map[stock.Key]bool

	reserveErr map[stock.Key]error
}

func newTestInventoryStore() *testInventoryStore {
	return &testInventoryStore{
		InventoryStore: memory.NewInventoryStore(),
		keys:           make(map[stock.Key]bool),
		reserveErr:     make(map[stock.Key]error),
	}
}

func (s *testInventoryStore) Reserve(ctx context.Context, key stock.Key, qty int) (int, error) {
	if err := s.reserveErr[key]; err != nil {
		return 0, err
	}
	return s.InventoryStore.Reserve(ctx, key, qty)
}

func (s *testInventoryStore) addStock(t *testing.T, warehouseCode string, sku string, qty int) {
	t.Helper()
	position, err := stock.NewWarehouseStock(warehouseCode, sku, qty)
	require.NoError(t, err)
	require.NoError(t, s.SetStock(position))
	s.mu.Lock()
	s.keys[position.Key()] = true
	s.mu.Unlock()
}

// setEstimate registers the dispatch estimate toward the zone of the
// test destination 400001.
func (s *testInventoryStore) setEstimate(warehouseCode string, transitDays int, cost int64) {
	s.SetOutboundEstimate(warehouseCode, "4", ports.OutboundEstimate{
		TransitDays:  transitDays,
		ShippingCost: decimal.NewFromInt(cost),
	})
}

func (s *testInventoryStore) reservedQty(key stock.Key) int {
	levels, err := s.InventoryStore.StockLevels(context.Background(), key.SKU)
	if err != nil {
		return 0
	}
	for _, level := range levels {
		if level.WarehouseCode() == key.WarehouseCode {
			return level.ReservedQty()
		}
	}
	return 0
}

func (s *testInventoryStore) totalReserved() int {
	s.mu.Lock()
	keys := make([]stock.Key, 0, len(s.keys))
	for key := range s.keys {
		keys = append(keys, key)
	}
	s.mu.Unlock()
	total := 0
	for _, key := range keys {
		total += s.reservedQty(key)
	}
	return total
}

// failingPartnerCatalog simulates partner master downtime.
type failingPartnerCatalog struct{ err error }

func (f failingPartnerCatalog) GetServiceable(context.Context, kernel.Pincode, kernel.Pincode) ([]*partner.Partner, error) {
	return nil, f.err
}

func buildPartner(t *testing.T, code string, baseRate, perKgRate, fuelPct float64, reliability float64, tatDays int) *partner.Partner {
	t.Helper()
	card, err := partner.NewRateCard(
		decimal.NewFromFloat(baseRate),
		decimal.NewFromFloat(perKgRate),
		decimal.NewFromFloat(fuelPct),
		decimal.Zero,
		decimal.Zero,
	)
	require.NoError(t, err)
	p, err := partner.NewPartner(
		code,
		code+" Logistics",
		nil,
		[]kernel.PincodeRange{mustRange(t, "400000", "499999")},
		card,
		reliability,
		map[string]int{partner.LaneKey("1", "4"): tatDays},
		tatDays,
	)
	require.NoError(t, err)
	return p
}
