package ports

import (
	"context"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/stock"

	"github.com/shopspring/decimal"
)

// OutboundEstimate is the operational cost of shipping from a warehouse to
// a destination pincode: transit days for SLA-first ranking, shipping cost
// for cost-first ranking.
type OutboundEstimate struct {
	TransitDays  int
	ShippingCost decimal.Decimal
}

// InventoryStore is the engine's contract with the warehouse inventory
// system. The store owns the WarehouseStock rows; the allocation engine
// consults and reserves against them.
//
// Reserve and Release must serialize per (warehouse, SKU) key: concurrent
// reservation attempts on the same key perform their read-modify-write of
// reservedQty atomically (per-key lock or compare-and-swap retried on
// conflict). Distinct keys are independent and may be reserved in parallel.
//
// Every method honors the deadline carried by ctx; a deadline expiry or an
// unreachable store surfaces as an error and is classified as an
// infrastructure failure by the caller.
type InventoryStore interface {
	// StockLevels returns the stock positions holding the SKU across all
	// warehouses. Warehouses with a zero free quantity are included;
	// warehouses with no row for the SKU are not.
	StockLevels(ctx context.Context, sku string) ([]stock.WarehouseStock, error)

	// OutboundEstimate returns the transit time and shipping cost estimate
	// for dispatching from the warehouse to the destination pincode.
	OutboundEstimate(ctx context.Context, warehouseCode string, destination kernel.Pincode) (OutboundEstimate, error)

	// Reserve atomically reserves up to qty units at the key and returns
	// the granted quantity, which may be less than qty or zero when stock
	// is short or reservation conflicts exhausted the bounded retry
	// budget. A zero grant is a business outcome, not an error.
	Reserve(ctx context.Context, key stock.Key, qty int) (int, error)

	// Release performs the compensating decrement of reservedQty for
	// previously granted reservations.
	Release(ctx context.Context, key stock.Key, qty int) error
}
