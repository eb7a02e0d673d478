package services

import (
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
)

// AllocationStrategy names how the stock for an order was distributed.
type AllocationStrategy int

const (
	// AllocationStrategyUnknown represents an invalid or undefined strategy.
	AllocationStrategyUnknown AllocationStrategy = iota

	// SingleWarehouse means every allocated unit came from one warehouse.
	SingleWarehouse

	// MultiWarehouseHopping means at least one line hopped to additional
	// warehouses after the primary one.
	MultiWarehouseHopping
)

func getAllocationStrategyStrings() map[AllocationStrategy]string {
	return map[AllocationStrategy]string{
		AllocationStrategyUnknown: "UNKNOWN",
		SingleWarehouse:           "SINGLE_WAREHOUSE",
		MultiWarehouseHopping:     "MULTI_WAREHOUSE_HOPPING",
	}
}

// AllocationStrategyFromString parses the wire form of a strategy.
func AllocationStrategyFromString(s string) (AllocationStrategy, error) {
	for strategy, str := range getAllocationStrategyStrings() {
		if strategy != AllocationStrategyUnknown && str == s {
			return strategy, nil
		}
	}
	return AllocationStrategyUnknown, errs.NewValueIsInvalidError("allocationStrategy")
}

// String returns the wire form of the strategy.
func (s AllocationStrategy) String() string {
	if str, ok := getAllocationStrategyStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Allocation is one reservation made for an order line: a quantity
// granted at a warehouse, tagged with the hop level at which the
// warehouse was visited. Hop level zero is the primary warehouse.
type Allocation struct {
	WarehouseCode string
	AllocatedQty  int
	HopLevel      int
}

// LineAllocation is the allocation outcome for a single order line.
// ShortfallQty is the portion of the requested quantity that no
// warehouse within the hop budget could cover; a shortfall is a business
// outcome, not an error.
type LineAllocation struct {
	SKU          string
	RequestedQty int
	Allocations  []Allocation
	ShortfallQty int
}

// IsFullyAllocated reports whether the line has no shortfall.
func (l LineAllocation) IsFullyAllocated() bool {
	return l.ShortfallQty == 0
}

// AllocatedQty returns the total quantity reserved across warehouses.
func (l LineAllocation) AllocatedQty() int {
	total := 0
	for _, a := range l.Allocations {
		total += a.AllocatedQty
	}
	return total
}

// AllocationResult is the outcome of allocating one order.
type AllocationResult struct {
	// Lines holds one entry per order line, in order-line order.
	Lines []LineAllocation

	// Strategy is how the allocated units were distributed.
	Strategy AllocationStrategy

	// TotalHops is the highest hop level any allocation entry used.
	TotalHops int

	// SplitRequired is true when covering some single line needed more
	// than one warehouse. It is set even when splitting is disallowed
	// and that line was rolled back to a shortfall.
	SplitRequired bool

	// Success is true when every line was fully allocated.
	Success bool

	// Simulated marks a substituted result produced from a degraded-mode
	// heuristic after an infrastructure failure. Simulated results hold
	// no actual reservations.
	Simulated bool
}

// Warehouses returns the distinct warehouse codes holding reservations,
// in first-use order.
func (r AllocationResult) Warehouses() []string {
	seen := make(map[string]bool)
	var codes []string
	for _, line := range r.Lines {
		for _, a := range line.Allocations {
			if !seen[a.WarehouseCode] {
				seen[a.WarehouseCode] = true
				codes = append(codes, a.WarehouseCode)
			}
		}
	}
	return codes
}
