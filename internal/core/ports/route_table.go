package ports

import (
	"context"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
)

// RouteEntry is a row of the zone-to-zone route reference table.
//
// TransitDays is the physical network line-haul time for the lane.
// BaseTATDays is the quoted standard turnaround for the lane, which
// includes the operational buffer on top of transit. BaseTATDays is never
// less than TransitDays.
type RouteEntry struct {
	TransitDays int
	BaseTATDays int
}

// RouteTable resolves origin-destination pincode pairs to route reference
// data. The table is read-mostly master data maintained by network planning.
type RouteTable interface {
	// Route returns the entry for the lane between origin and destination.
	// found is false when the pair has no configured route, which the
	// caller treats as an unserviceable lane rather than an error.
	Route(ctx context.Context, origin, destination kernel.Pincode) (entry RouteEntry, found bool, err error)
}
