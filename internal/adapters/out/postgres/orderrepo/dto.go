// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/sla"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by lifecycle stage and destination.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OriginPincode      string          `gorm:"type:varchar(6);not null"`
	DestinationPincode string          `gorm:"type:varchar(6);not null;index"`
	OrderType          string          `gorm:"type:varchar(16);not null"`
	PaymentMode        string          `gorm:"type:varchar(16);not null"`
	CODAmount          decimal.Decimal `gorm:"type:numeric(12,2)"`
	WeightKg           float64         `gorm:"type:numeric(8,3);not null"`
	PlacedAt           time.Time       `gorm:"not null;index"`
	PreferredWarehouse string          `gorm:"type:varchar(32)"`
	Stage              string          `gorm:"type:varchar(32);not null;index"`
	Lines              []OrderLineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one SKU line of a persisted order.
type OrderLineDTO struct {
	ID      uint      `gorm:"primaryKey;autoIncrement"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;index"`
	SKU     string    `gorm:"type:varchar(64);not null"`
	Qty     int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// PromiseDTO represents the delivery promise stored for an order.
// One promise per order; recomputation replaces the row.
type PromiseDTO struct {
	OrderID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	PromisedDeliveryDate time.Time
	TATDays              int    `gorm:"type:int;not null"`
	NetworkTransitDays   int    `gorm:"type:int;not null"`
	Risk                 string `gorm:"type:varchar(16);not null"`
	IsAchievable         bool   `gorm:"not null"`
	PlacedAt             time.Time
}

// TableName specifies the database table name for promise entities.
func (PromiseDTO) TableName() string {
	return "promises"
}

// MilestoneDTO represents one reached lifecycle stage of an order.
// The (order, stage) pair is unique so re-recording a stage is a no-op.
type MilestoneDTO struct {
	ID         uint       `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_milestones_order_stage"`
	Stage      string     `gorm:"type:varchar(32);not null;uniqueIndex:idx_milestones_order_stage"`
	OccurredAt *time.Time `gorm:""`
}

// TableName specifies the database table name for milestone entities.
func (MilestoneDTO) TableName() string {
	return "milestones"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(ord *order.Order) OrderDTO {
	orderID := ord.ID().Bytes()
	lines := make([]OrderLineDTO, 0, len(ord.Lines()))
	for _, line := range ord.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID: orderID,
			SKU:     line.SKU(),
			Qty:     line.Qty(),
		})
	}

	return OrderDTO{
		ID:                 orderID,
		OriginPincode:      ord.OriginPincode().String(),
		DestinationPincode: ord.DestinationPincode().String(),
		OrderType:          ord.OrderType().String(),
		PaymentMode:        ord.PaymentMode().String(),
		CODAmount:          ord.CODAmount(),
		WeightKg:           ord.WeightKg(),
		PlacedAt:           ord.PlacedAt(),
		PreferredWarehouse: ord.PreferredWarehouse(),
		Stage:              ord.Stage().String(),
		Lines:              lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its lifecycle stage using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	origin, err := kernel.NewPincode(dto.OriginPincode)
	if err != nil {
		return nil, err
	}
	destination, err := kernel.NewPincode(dto.DestinationPincode)
	if err != nil {
		return nil, err
	}
	orderType, err := order.OrderTypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}
	paymentMode, err := order.PaymentModeFromString(dto.PaymentMode)
	if err != nil {
		return nil, err
	}
	stage, err := order.StageFromString(dto.Stage)
	if err != nil {
		return nil, err
	}

	lines := make([]order.OrderLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := order.NewOrderLine(lineDTO.SKU, lineDTO.Qty)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, lines, origin, destination, orderType, paymentMode,
		dto.CODAmount, dto.WeightKg, dto.PlacedAt, dto.PreferredWarehouse, stage)
}

// promiseFromDomain converts a delivery promise to its database representation.
func promiseFromDomain(id kernel.UUID, promise sla.Promise) PromiseDTO {
	return PromiseDTO{
		OrderID:              id.Bytes(),
		PromisedDeliveryDate: promise.PromisedDeliveryDate,
		TATDays:              promise.TATDays,
		NetworkTransitDays:   promise.NetworkTransitDays,
		Risk:                 promise.Risk.String(),
		IsAchievable:         promise.IsAchievable,
		PlacedAt:             promise.PlacedAt,
	}
}

// promiseToDomain converts a database DTO to a delivery promise.
func promiseToDomain(dto PromiseDTO) (sla.Promise, error) {
	risk := sla.RiskLevelUnknown
	if dto.IsAchievable {
		parsed, err := sla.RiskLevelFromString(dto.Risk)
		if err != nil {
			return sla.Promise{}, err
		}
		risk = parsed
	}

	return sla.Promise{
		PromisedDeliveryDate: dto.PromisedDeliveryDate,
		TATDays:              dto.TATDays,
		NetworkTransitDays:   dto.NetworkTransitDays,
		Risk:                 risk,
		IsAchievable:         dto.IsAchievable,
		PlacedAt:             dto.PlacedAt,
	}, nil
}

// milestoneToDomain converts a database DTO to a milestone.
func milestoneToDomain(dto MilestoneDTO) (sla.Milestone, error) {
	stage, err := order.StageFromString(dto.Stage)
	if err != nil {
		return sla.Milestone{}, err
	}
	return sla.NewMilestone(stage, dto.OccurredAt)
}
