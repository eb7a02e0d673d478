package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/partner"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/ports"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
)

var _ ports.PartnerCatalog = &PartnerCatalog{}

// PartnerCatalog keeps the partner master in process memory.
type PartnerCatalog struct {
	mu       sync.RWMutex
	partners []*partner.Partner
}

// NewPartnerCatalog creates a catalog seeded with the given partners.
func NewPartnerCatalog(partners ...*partner.Partner) *PartnerCatalog {
	return &PartnerCatalog{partners: partners}
}

// Add registers a partner with the catalog.
func (c *PartnerCatalog) Add(p *partner.Partner) error {
	if p == nil {
		return errs.NewValueIsRequiredError("partner")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.partners = append(c.partners, p)
	return nil
}

// GetServiceable returns every partner covering pickup at origin and
// delivery at destination, ordered by partner code.
func (c *PartnerCatalog) GetServiceable(
	ctx context.Context, origin, destination kernel.Pincode,
) ([]*partner.Partner, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	if err := destination.Validate(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	serviceable := make([]*partner.Partner, 0)
	for _, candidate := range c.partners {
		if candidate.IsServiceable(origin, destination) {
			serviceable = append(serviceable, candidate)
		}
	}
	sort.Slice(serviceable, func(i, j int) bool {
		return serviceable[i].Code() < serviceable[j].Code()
	})
	return serviceable, nil
}
