package memory

import (
	"context"
	"sync"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/ports"
)

var _ ports.RouteTable = &RouteTable{}

// RouteTable keeps the zone-to-zone route reference in process memory.
// Lanes are directional: zone 1 to zone 4 and zone 4 to zone 1 are
// configured independently.
type RouteTable struct {
	mu      sync.RWMutex
	entries map[string]ports.RouteEntry
}

// NewRouteTable creates an empty in-memory route table.
func NewRouteTable() *RouteTable {
	return &RouteTable{entries: make(map[string]ports.RouteEntry)}
}

// SetRoute configures the lane between two zones.
func (t *RouteTable) SetRoute(originZone string, destinationZone string, entry ports.RouteEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[laneKey(originZone, destinationZone)] = entry
}

// Route resolves the lane between origin and destination by their zones.
func (t *RouteTable) Route(
	ctx context.Context, origin, destination kernel.Pincode,
) (ports.RouteEntry, bool, error) {
	if err := ctx.Err(); err != nil {
		return ports.RouteEntry{}, false, err
	}
	if err := origin.Validate(); err != nil {
		return ports.RouteEntry{}, false, err
	}
	if err := destination.Validate(); err != nil {
		return ports.RouteEntry{}, false, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	entry, ok := t.entries[laneKey(origin.Zone(), destination.Zone())]
	return entry, ok, nil
}

func laneKey(originZone string, destinationZone string) string {
	return originZone + "-" + destinationZone
}
