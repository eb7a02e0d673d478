package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/adapters/out/memory"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/application/usecases/commands"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/partner"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/sla"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/stock"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/services"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/ports"
)

var testPlacedAt = time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)

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

func buildCommand(t *testing.T, orderID kernel.UUID) commands.OrchestrateOrderCommand {
	t.Helper()
	cmd, err := commands.NewOrchestrateOrderCommand(
		orderID,
		[]order.OrderLine{mustLine(t, "SKU-A", 5)},
		mustPincode(t, "110042"),
		mustPincode(t, "400001"),
		order.Standard,
		order.Prepaid,
		decimal.Zero,
		2,
		testPlacedAt,
		"",
	)
	require.NoError(t, err)
	return cmd
}

func buildStoredOrder(t *testing.T, orderID kernel.UUID) *order.Order {
	t.Helper()
	ord, err := order.NewOrder(
		orderID,
		[]order.OrderLine{mustLine(t, "SKU-A", 5)},
		mustPincode(t, "110042"),
		mustPincode(t, "400001"),
		order.Standard,
		order.Prepaid,
		decimal.Zero,
		2,
		testPlacedAt,
		"",
	)
	require.NoError(t, err)
	return ord
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllUndelivered(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return nil, args.Error(1)
}

func (m *MockOrderRepository) SavePromise(ctx context.Context, id kernel.UUID, promise sla.Promise) error {
	args := m.Called(ctx, id, promise)
	return args.Error(0)
}

func (m *MockOrderRepository) GetPromise(ctx context.Context, id kernel.UUID) (sla.Promise, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(sla.Promise), args.Error(1)
}

func (m *MockOrderRepository) GetMilestones(ctx context.Context, id kernel.UUID) ([]sla.Milestone, error) {
	args := m.Called(ctx, id)
	return nil, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// routeTableWithLane builds an in-memory route table carrying the test
// lane from zone 1 to zone 4.
func routeTableWithLane(entry ports.RouteEntry) *memory.RouteTable {
	table := memory.NewRouteTable()
	table.SetRoute("1", "4", entry)
	return table
}

// failingRouteTable simulates route reference downtime.
type failingRouteTable struct{ err error }

func (f failingRouteTable) Route(context.Context, kernel.Pincode, kernel.Pincode) (ports.RouteEntry, bool, error) {
	return ports.RouteEntry{}, false, f.err
}

// stubInventoryStore seeds the in-memory inventory adapter with one
// warehouse of stock and lets reservation attempts be failed on demand.
type stubInventoryStore struct {
	*memory.InventoryStore
	keys []stock.Key

	reserveErr error
}

func newStubInventoryStore(t *testing.T, warehouseCode string, freeBySKU map[string]int) *stubInventoryStore {
	t.Helper()
	s := &stubInventoryStore{InventoryStore: memory.NewInventoryStore()}
	s.SetOutboundEstimate(warehouseCode, "4", ports.OutboundEstimate{
		TransitDays:  1,
		ShippingCost: decimal.NewFromInt(50),
	})
	for sku, free := range freeBySKU {
		position, err := stock.NewWarehouseStock(warehouseCode, sku, free)
		require.NoError(t, err)
		require.NoError(t, s.SetStock(position))
		s.keys = append(s.keys, position.Key())
	}
	return s
}

func (s *stubInventoryStore) Reserve(ctx context.Context, key stock.Key, qty int) (int, error) {
	if s.reserveErr != nil {
		return 0, s.reserveErr
	}
	return s.InventoryStore.Reserve(ctx, key, qty)
}

func (s *stubInventoryStore) totalReserved() int {
	total := 0
	for _, key := range s.keys {
		levels, err := s.InventoryStore.StockLevels(context.Background(), key.SKU)
		if err != nil {
			continue
		}
		for _, level := range levels {
			if level.WarehouseCode() == key.WarehouseCode {
				total += level.ReservedQty()
			}
		}
	}
	return total
}

// failingPartnerCatalog simulates partner master downtime.
type failingPartnerCatalog struct{ err error }

func (f failingPartnerCatalog) GetServiceable(context.Context, kernel.Pincode, kernel.Pincode) ([]*partner.Partner, error) {
	return nil, f.err
}

func buildTestPartner(t *testing.T, code string, tatDays int) *partner.Partner {
	t.Helper()
	card, err := partner.NewRateCard(
		decimal.NewFromInt(30), decimal.NewFromInt(10), decimal.Zero, decimal.Zero, decimal.Zero,
	)
	require.NoError(t, err)
	from, err := kernel.NewPincode("100000")
	require.NoError(t, err)
	to, err := kernel.NewPincode("999999")
	require.NoError(t, err)
	allIndia, err := kernel.NewPincodeRange(from, to)
	require.NoError(t, err)
	p, err := partner.NewPartner(code, code+" Logistics", nil,
		[]kernel.PincodeRange{allIndia}, card, 90, nil, tatDays)
	require.NoError(t, err)
	return p
}

type engineSet struct {
	slaEngine        *services.SLAEngine
	allocationEngine *services.AllocationEngine
	partnerSelector  *services.PartnerSelector
	inventory        *stubInventoryStore
}

func buildEngines(t *testing.T, routes ports.RouteTable, inventory *stubInventoryStore, catalog ports.PartnerCatalog) engineSet {
	t.Helper()
	config := services.DefaultEngineConfig()
	slaEngine, err := services.NewSLAEngine(routes, config)
	require.NoError(t, err)
	allocationEngine, err := services.NewAllocationEngine(inventory, config)
	require.NoError(t, err)
	partnerSelector, err := services.NewPartnerSelector(catalog, config)
	require.NoError(t, err)
	return engineSet{
		slaEngine:        slaEngine,
		allocationEngine: allocationEngine,
		partnerSelector:  partnerSelector,
		inventory:        inventory,
	}
}
