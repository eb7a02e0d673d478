package routerepo

import (
	"context"
	"errors"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/ports"

	"gorm.io/gorm"
)

// RouteDTO is the database representation of a zone-to-zone route entry.
type RouteDTO struct {
	OriginZone      string `gorm:"type:varchar(1);primaryKey"`
	DestinationZone string `gorm:"type:varchar(1);primaryKey"`
	TransitDays     int    `gorm:"not null"`
	BaseTATDays     int    `gorm:"not null;column:base_tat_days"`
}

// TableName overrides the table name used by GORM.
func (RouteDTO) TableName() string {
	return "routes"
}

// GormRouteTable implements RouteTable using GORM. Routes are maintained
// per pincode zone pair by network planning.
type GormRouteTable struct {
	db *gorm.DB
}

// NewGormRouteTable creates a new GORM route table.
func NewGormRouteTable(db *gorm.DB) *GormRouteTable {
	return &GormRouteTable{db: db}
}

// Route returns the entry for the lane between origin and destination.
// An absent row means the lane is unserviceable, not an error.
func (t *GormRouteTable) Route(
	ctx context.Context, origin, destination kernel.Pincode,
) (ports.RouteEntry, bool, error) {
	if err := origin.Validate(); err != nil {
		return ports.RouteEntry{}, false, err
	}
	if err := destination.Validate(); err != nil {
		return ports.RouteEntry{}, false, err
	}

	var dto RouteDTO
	err := t.db.WithContext(ctx).
		First(&dto, "origin_zone = ? AND destination_zone = ?", origin.Zone(), destination.Zone()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.RouteEntry{}, false, nil
		}
		return ports.RouteEntry{}, false, err
	}

	entry := ports.RouteEntry{
		TransitDays: dto.TransitDays,
		BaseTATDays: dto.BaseTATDays,
	}
	return entry, true, nil
}
