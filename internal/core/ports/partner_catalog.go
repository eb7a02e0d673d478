package ports

import (
	"context"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/partner"
)

// PartnerCatalog is the engine's contract with the logistics partner master.
type PartnerCatalog interface {
	// GetServiceable returns every partner whose serviceability map covers
	// pickup at origin and delivery at destination. An empty slice with a
	// nil error means no partner serves the lane.
	GetServiceable(ctx context.Context, origin, destination kernel.Pincode) ([]*partner.Partner, error)
}
