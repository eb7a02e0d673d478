package stockrepo

import (
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/stock"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/ports"

	"github.com/shopspring/decimal"
)

// StockDTO is the database representation of a warehouse stock position.
// The version column backs optimistic compare-and-swap on reservations.
type StockDTO struct {
	WarehouseCode string `gorm:"type:varchar(32);primaryKey"`
	SKU           string `gorm:"type:varchar(64);primaryKey;column:sku"`
	AvailableQty  int    `gorm:"not null"`
	ReservedQty   int    `gorm:"not null;default:0"`
	Version       int64  `gorm:"not null;default:1"`
}

// TableName overrides the table name used by GORM.
func (StockDTO) TableName() string {
	return "warehouse_stock"
}

// OutboundEstimateDTO is the database representation of the outbound cost
// reference for a warehouse, keyed by destination pincode zone.
type OutboundEstimateDTO struct {
	WarehouseCode   string          `gorm:"type:varchar(32);primaryKey"`
	DestinationZone string          `gorm:"type:varchar(1);primaryKey"`
	TransitDays     int             `gorm:"not null"`
	ShippingCost    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName overrides the table name used by GORM.
func (OutboundEstimateDTO) TableName() string {
	return "outbound_estimates"
}

func stockToDomain(dto StockDTO) (stock.WarehouseStock, error) {
	return stock.RestoreWarehouseStock(
		dto.WarehouseCode, dto.SKU, dto.AvailableQty, dto.ReservedQty, dto.Version)
}

func estimateToDomain(dto OutboundEstimateDTO) ports.OutboundEstimate {
	return ports.OutboundEstimate{
		TransitDays:  dto.TransitDays,
		ShippingCost: dto.ShippingCost,
	}
}
