package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/stock"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/ports"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
)

// AllocationEngine distributes an order's lines across warehouses.
//
// Each line starts at its best candidate warehouse and hops to further
// warehouses while quantity remains and the hop budget allows. Candidate
// ranking follows the configured priority: outbound transit time for
// SLA-first, outbound shipping cost for cost-first, with the order's
// preferred warehouse always tried first when it holds the SKU. Lines
// are independent and allocate concurrently; reservations for distinct
// (warehouse, SKU) keys never contend.
//
// The engine distinguishes business outcomes from failures. Insufficient
// stock yields a shortfall inside a successful call; only collaborator
// failures surface as errors, and on any error the engine releases every
// reservation it granted during the call before returning.
type AllocationEngine struct {
	inventory ports.InventoryStore
	config    EngineConfig
}

// NewAllocationEngine creates an allocation engine over the inventory store.
//
// Parameters:
//   - inventory: The warehouse inventory system (stock levels, reservations)
//   - config: Validated engine tuning (hop budget, priority, split policy)
//
// Returns:
//   - *AllocationEngine: The engine, ready for allocation
//   - error: Validation error when inventory is nil or config is invalid
func NewAllocationEngine(inventory ports.InventoryStore, config EngineConfig) (*AllocationEngine, error) {
	if inventory == nil {
		return nil, errs.NewValueIsRequiredError("inventory")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &AllocationEngine{inventory: inventory, config: config}, nil
}

// Allocate reserves warehouse stock for every line of the order.
//
// When splitting is disallowed, a line whose coverage spans more than
// one warehouse has its reservations released and its entire requested
// quantity recorded as shortfall. Other lines keep their reservations;
// the policy is enforced line by line.
//
// Parameters:
//   - ctx: Carries the collaborator deadline for store calls
//   - ord: The order to allocate (must be valid)
//
// Returns:
//   - AllocationResult: Per-line allocations, shortfalls and strategy
//   - error: Inventory store failures; reservations are released first
func (e *AllocationEngine) Allocate(ctx context.Context, ord *order.Order) (AllocationResult, error) {
	if err := ord.Validate(); err != nil {
		return AllocationResult{}, err
	}

	lines := ord.Lines()
	results := make([]LineAllocation, len(lines))
	lineErrors := make([]error, len(lines))

	var wg sync.WaitGroup
	for i, line := range lines {
		wg.Add(1)
		go func(i int, line order.OrderLine) {
			defer wg.Done()
			results[i], lineErrors[i] = e.allocateLine(ctx, line, ord.PreferredWarehouse(), ord.DestinationPincode())
		}(i, line)
	}
	wg.Wait()

	result := AllocationResult{Lines: results}
	if err := errors.Join(lineErrors...); err != nil {
		e.releaseAll(ctx, result)
		return AllocationResult{}, err
	}

	return e.finalize(ctx, result), nil
}

// ReleaseAllocations releases every reservation held by the result. Used
// to compensate when a later orchestration step fails after allocation
// succeeded. Simulated results hold no reservations and are a no-op.
func (e *AllocationEngine) ReleaseAllocations(ctx context.Context, result AllocationResult) error {
	if result.Simulated {
		return nil
	}
	var releaseErrors []error
	for _, line := range result.Lines {
		for _, a := range line.Allocations {
			key := stock.Key{WarehouseCode: a.WarehouseCode, SKU: line.SKU}
			if err := e.inventory.Release(ctx, key, a.AllocatedQty); err != nil {
				releaseErrors = append(releaseErrors, err)
			}
		}
	}
	return errors.Join(releaseErrors...)
}

// allocateLine walks the candidate warehouses for one line, reserving at
// each hop until the line is covered or the hop budget runs out.
func (e *AllocationEngine) allocateLine(
	ctx context.Context,
	line order.OrderLine,
	preferredWarehouse string,
	destination kernel.Pincode,
) (LineAllocation, error) {
	result := LineAllocation{SKU: line.SKU(), RequestedQty: line.Qty()}

	candidates, err := e.rankCandidates(ctx, line.SKU(), preferredWarehouse, destination)
	if err != nil {
		return result, err
	}

	remaining := line.Qty()
	for hop, candidate := range candidates {
		if remaining == 0 || hop > e.config.MaxHops {
			break
		}
		granted, err := e.inventory.Reserve(ctx, stock.Key{WarehouseCode: candidate, SKU: line.SKU()}, remaining)
		if err != nil {
			return result, err
		}
		if granted == 0 {
			continue
		}
		result.Allocations = append(result.Allocations, Allocation{
			WarehouseCode: candidate,
			AllocatedQty:  granted,
			HopLevel:      hop,
		})
		remaining -= granted
	}

	result.ShortfallQty = remaining
	return result, nil
}

// rankCandidates returns the warehouse codes holding the SKU with free
// stock, best candidate first. The preferred warehouse, when stocked,
// always leads; the rest rank by the configured priority with warehouse
// code as tiebreak.
func (e *AllocationEngine) rankCandidates(
	ctx context.Context,
	sku string,
	preferredWarehouse string,
	destination kernel.Pincode,
) ([]string, error) {
	levels, err := e.inventory.StockLevels(ctx, sku)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		code     string
		estimate ports.OutboundEstimate
	}
	var candidates []candidate
	for _, level := range levels {
		if level.Free() == 0 {
			continue
		}
		estimate, err := e.inventory.OutboundEstimate(ctx, level.WarehouseCode(), destination)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate{code: level.WarehouseCode(), estimate: estimate})
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.code == preferredWarehouse || b.code == preferredWarehouse {
			return a.code == preferredWarehouse
		}
		if e.config.Priority == PriorityOrderCostFirst {
			if cmp := a.estimate.ShippingCost.Cmp(b.estimate.ShippingCost); cmp != 0 {
				return cmp < 0
			}
		} else if a.estimate.TransitDays != b.estimate.TransitDays {
			return a.estimate.TransitDays < b.estimate.TransitDays
		}
		return a.code < b.code
	})

	codes := make([]string, 0, len(candidates))
	for _, c := range candidates {
		codes = append(codes, c.code)
	}
	return codes, nil
}

// finalize enforces the per-line split policy and derives the
// order-level strategy and flags. A split is a single line whose
// allocations span more than one warehouse; lines served from one
// warehouse each never trip the policy, however many warehouses the
// whole order touches.
func (e *AllocationEngine) finalize(ctx context.Context, result AllocationResult) AllocationResult {
	for i := range result.Lines {
		line := &result.Lines[i]
		if len(line.Allocations) <= 1 {
			continue
		}
		result.SplitRequired = true
		if e.config.SplitOrderAllowed {
			continue
		}
		e.releaseLine(ctx, *line)
		line.Allocations = nil
		line.ShortfallQty = line.RequestedQty
	}

	result.Strategy = SingleWarehouse
	for _, line := range result.Lines {
		for _, a := range line.Allocations {
			if a.HopLevel > 0 {
				result.Strategy = MultiWarehouseHopping
			}
			if a.HopLevel > result.TotalHops {
				result.TotalHops = a.HopLevel
			}
		}
	}

	result.Success = true
	for _, line := range result.Lines {
		if !line.IsFullyAllocated() {
			result.Success = false
			break
		}
	}
	return result
}

// releaseLine returns one line's reservations when the split policy
// rejects them. Detached from cancellation like releaseAll.
func (e *AllocationEngine) releaseLine(ctx context.Context, line LineAllocation) {
	detached := context.WithoutCancel(ctx)
	for _, a := range line.Allocations {
		key := stock.Key{WarehouseCode: a.WarehouseCode, SKU: line.SKU}
		_ = e.inventory.Release(detached, key, a.AllocatedQty)
	}
}

// releaseAll is the internal compensation path. It must run even when
// ctx was cancelled, so it detaches from cancellation first.
func (e *AllocationEngine) releaseAll(ctx context.Context, result AllocationResult) {
	_ = e.ReleaseAllocations(context.WithoutCancel(ctx), result)
}
