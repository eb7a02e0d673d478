package stockrepo

import (
	"context"
	"errors"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/stock"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/ports"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"

	"gorm.io/gorm"
)

// maxCASAttempts bounds the compare-and-swap retry loop on reservation
// conflicts. Exhaustion on Reserve is reported as a zero grant, matching
// the port contract.
const maxCASAttempts = 5

// ErrConflictRetryExhausted is returned by Release when concurrent updates
// kept invalidating the version check for all retry attempts.
var ErrConflictRetryExhausted = errors.New("stock version conflict retries exhausted")

// GormInventoryStore implements InventoryStore using GORM. Reservation
// atomicity comes from optimistic concurrency: each update is conditional
// on the version read, retried on conflict.
type GormInventoryStore struct {
	db *gorm.DB
}

// NewGormInventoryStore creates a new GORM inventory store.
func NewGormInventoryStore(db *gorm.DB) *GormInventoryStore {
	return &GormInventoryStore{db: db}
}

// StockLevels returns the stock positions holding the SKU across all
// warehouses.
func (s *GormInventoryStore) StockLevels(ctx context.Context, sku string) ([]stock.WarehouseStock, error) {
	if sku == "" {
		return nil, errs.NewValueIsRequiredError("sku")
	}

	var dtos []StockDTO
	if err := s.db.WithContext(ctx).
		Order("warehouse_code").
		Find(&dtos, "sku = ?", sku).Error; err != nil {
		return nil, err
	}

	positions := make([]stock.WarehouseStock, 0, len(dtos))
	for _, dto := range dtos {
		position, err := stockToDomain(dto)
		if err != nil {
			return nil, err
		}
		positions = append(positions, position)
	}

	return positions, nil
}

// OutboundEstimate returns the transit time and shipping cost estimate for
// dispatching from the warehouse to the destination pincode. Estimates are
// maintained per destination zone.
func (s *GormInventoryStore) OutboundEstimate(
	ctx context.Context, warehouseCode string, destination kernel.Pincode,
) (ports.OutboundEstimate, error) {
	if warehouseCode == "" {
		return ports.OutboundEstimate{}, errs.NewValueIsRequiredError("warehouse code")
	}
	if err := destination.Validate(); err != nil {
		return ports.OutboundEstimate{}, err
	}

	var dto OutboundEstimateDTO
	err := s.db.WithContext(ctx).
		First(&dto, "warehouse_code = ? AND destination_zone = ?", warehouseCode, destination.Zone()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.OutboundEstimate{}, errs.NewObjectNotFoundError("outbound estimate",
				warehouseCode+"/"+destination.Zone())
		}
		return ports.OutboundEstimate{}, err
	}

	return estimateToDomain(dto), nil
}

// Reserve atomically reserves up to qty units at the key and returns the
// granted quantity. Conflicting writers retry against the fresh version;
// retry exhaustion yields a zero grant rather than an error.
func (s *GormInventoryStore) Reserve(ctx context.Context, key stock.Key, qty int) (int, error) {
	for attempt := 0; attempt < maxCASAttempts; attempt++ {
		position, err := s.load(ctx, key)
		if err != nil {
			return 0, err
		}

		granted, updated, err := position.Reserve(qty)
		if err != nil {
			return 0, err
		}
		if granted == 0 {
			return 0, nil
		}

		swapped, err := s.swap(ctx, position, updated)
		if err != nil {
			return 0, err
		}
		if swapped {
			return granted, nil
		}
	}

	return 0, nil
}

// Release performs the compensating decrement of reservedQty for
// previously granted reservations.
func (s *GormInventoryStore) Release(ctx context.Context, key stock.Key, qty int) error {
	for attempt := 0; attempt < maxCASAttempts; attempt++ {
		position, err := s.load(ctx, key)
		if err != nil {
			return err
		}

		updated, err := position.Release(qty)
		if err != nil {
			return err
		}

		swapped, err := s.swap(ctx, position, updated)
		if err != nil {
			return err
		}
		if swapped {
			return nil
		}
	}

	return ErrConflictRetryExhausted
}

func (s *GormInventoryStore) load(ctx context.Context, key stock.Key) (stock.WarehouseStock, error) {
	var dto StockDTO
	err := s.db.WithContext(ctx).
		First(&dto, "warehouse_code = ? AND sku = ?", key.WarehouseCode, key.SKU).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return stock.WarehouseStock{}, errs.NewObjectNotFoundError("warehouse stock", key.String())
		}
		return stock.WarehouseStock{}, err
	}

	return stockToDomain(dto)
}

// swap writes the updated position conditional on the version read. A
// false result means another writer won the race.
func (s *GormInventoryStore) swap(ctx context.Context, read, updated stock.WarehouseStock) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&StockDTO{}).
		Where("warehouse_code = ? AND sku = ? AND version = ?",
			read.WarehouseCode(), read.SKU(), read.Version()).
		Updates(map[string]any{
			"reserved_qty": updated.ReservedQty(),
			"version":      updated.Version(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}
