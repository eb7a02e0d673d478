package partnerrepo

import (
	"context"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/partner"

	"gorm.io/gorm"
)

// GormPartnerCatalog implements PartnerCatalog using GORM. The catalog is
// small master data, so serviceability is evaluated in memory against the
// full partner list rather than pushed into SQL.
type GormPartnerCatalog struct {
	db *gorm.DB
}

// NewGormPartnerCatalog creates a new GORM partner catalog.
func NewGormPartnerCatalog(db *gorm.DB) *GormPartnerCatalog {
	return &GormPartnerCatalog{db: db}
}

// GetServiceable returns the partners whose coverage includes both pickup
// at origin and delivery at destination, in catalog code order.
func (c *GormPartnerCatalog) GetServiceable(
	ctx context.Context, origin, destination kernel.Pincode,
) ([]*partner.Partner, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	if err := destination.Validate(); err != nil {
		return nil, err
	}

	var dtos []PartnerDTO
	if err := c.db.WithContext(ctx).
		Preload("Ranges").
		Preload("Lanes").
		Order("code").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	serviceable := make([]*partner.Partner, 0, len(dtos))
	for _, dto := range dtos {
		candidate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		if candidate.IsServiceable(origin, destination) {
			serviceable = append(serviceable, candidate)
		}
	}

	return serviceable, nil
}
