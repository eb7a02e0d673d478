package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/partner"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/sla"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/services"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/ports"
)

// Monday before the 14:00 cutoff.
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

func buildStoredPromise(tatDays int) sla.Promise {
	return sla.Promise{
		PromisedDeliveryDate: testPlacedAt.AddDate(0, 0, tatDays),
		TATDays:              tatDays,
		NetworkTransitDays:   2,
		Risk:                 sla.RiskMedium,
		IsAchievable:         true,
		PlacedAt:             testPlacedAt,
	}
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sla.Milestone), args.Error(1)
}

// stubRouteTable serves one route for every lane, reports no route, or
// fails.
type stubRouteTable struct {
	entry ports.RouteEntry
	found bool
	err   error
}

func (s *stubRouteTable) Route(_ context.Context, _, _ kernel.Pincode) (ports.RouteEntry, bool, error) {
	if s.err != nil {
		return ports.RouteEntry{}, false, s.err
	}
	return s.entry, s.found, nil
}

// stubPartnerCatalog returns a fixed candidate set.
type stubPartnerCatalog struct {
	partners []*partner.Partner
	err      error
}

func (s *stubPartnerCatalog) GetServiceable(_ context.Context, _, _ kernel.Pincode) ([]*partner.Partner, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.partners, nil
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

func buildSLAEngine(t *testing.T, routes ports.RouteTable) *services.SLAEngine {
	t.Helper()
	engine, err := services.NewSLAEngine(routes, services.DefaultEngineConfig())
	require.NoError(t, err)
	return engine
}

func buildPartnerSelector(t *testing.T, catalog ports.PartnerCatalog) *services.PartnerSelector {
	t.Helper()
	selector, err := services.NewPartnerSelector(catalog, services.DefaultEngineConfig())
	require.NoError(t, err)
	return selector
}
