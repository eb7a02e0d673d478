package stock

import (
	"errors"
	"fmt"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
)

// ErrWarehouseStockIsNotConstructed is returned when a WarehouseStock was
// not created through NewWarehouseStock or RestoreWarehouseStock.
var ErrWarehouseStockIsNotConstructed = errors.New(
	"WarehouseStock must be created via NewWarehouseStock constructor")

// Key identifies a stock row: one (warehouse, SKU) pair. Reservation
// attempts racing on the same key must serialize; distinct keys are
// independent and may be reserved fully in parallel.
type Key struct {
	WarehouseCode string
	SKU           string
}

// String returns the canonical "warehouse/sku" form of the key.
func (k Key) String() string {
	return k.WarehouseCode + "/" + k.SKU
}

// WarehouseStock is the stock position of one SKU at one warehouse.
//
// Invariant: 0 <= reservedQty <= availableQty at all times. Only the
// allocation path mutates reservedQty, and every mutation returns a new
// value with an incremented version so stores can implement optimistic
// compare-and-swap on the version column.
//
// WarehouseStock has value semantics: Reserve and Release never mutate the
// receiver, they return the updated position.
type WarehouseStock struct {
	warehouseCode string
	sku           string
	availableQty  int
	reservedQty   int
	version       int64

	isConstructed bool
}

// NewWarehouseStock creates a stock position with no reservations.
func NewWarehouseStock(warehouseCode string, sku string, availableQty int) (WarehouseStock, error) {
	return RestoreWarehouseStock(warehouseCode, sku, availableQty, 0, 1)
}

// RestoreWarehouseStock reconstructs a stock position from persistence.
// It enforces the reservedQty <= availableQty invariant.
func RestoreWarehouseStock(
	warehouseCode string, sku string, availableQty int, reservedQty int, version int64,
) (WarehouseStock, error) {
	if warehouseCode == "" {
		return WarehouseStock{}, errs.NewValueIsRequiredError("warehouse code")
	}
	if sku == "" {
		return WarehouseStock{}, errs.NewValueIsRequiredError("sku")
	}
	if availableQty < 0 {
		return WarehouseStock{}, errs.NewValueIsInvalidErrorWithCause("available qty",
			fmt.Errorf("%d is negative", availableQty))
	}
	if reservedQty < 0 || reservedQty > availableQty {
		return WarehouseStock{}, errs.NewValueIsOutOfRangeError("reserved qty", reservedQty, 0, availableQty)
	}
	if version <= 0 {
		return WarehouseStock{}, errs.NewVersionIsInvalidError("version",
			fmt.Errorf("%d is not greater than 0", version))
	}

	return WarehouseStock{
		warehouseCode: warehouseCode,
		sku:           sku,
		availableQty:  availableQty,
		reservedQty:   reservedQty,
		version:       version,
		isConstructed: true,
	}, nil
}

// Key returns the (warehouse, SKU) identity of the position.
func (s WarehouseStock) Key() Key {
	return Key{WarehouseCode: s.warehouseCode, SKU: s.sku}
}

// WarehouseCode returns the warehouse holding the stock.
func (s WarehouseStock) WarehouseCode() string {
	return s.warehouseCode
}

// SKU returns the stock keeping unit of the position.
func (s WarehouseStock) SKU() string {
	return s.sku
}

// AvailableQty returns the physical on-hand quantity.
func (s WarehouseStock) AvailableQty() int {
	return s.availableQty
}

// ReservedQty returns the quantity already promised to orders.
func (s WarehouseStock) ReservedQty() int {
	return s.reservedQty
}

// Free returns the quantity still reservable: availableQty - reservedQty.
func (s WarehouseStock) Free() int {
	return s.availableQty - s.reservedQty
}

// Version returns the optimistic concurrency version of the position.
func (s WarehouseStock) Version() int64 {
	return s.version
}

// Reserve attempts to reserve up to qty units. It grants
// min(qty, Free()), possibly zero, and returns the granted quantity
// together with the updated position carrying an incremented version.
func (s WarehouseStock) Reserve(qty int) (int, WarehouseStock, error) {
	if err := s.Validate(); err != nil {
		return 0, WarehouseStock{}, err
	}
	if qty <= 0 {
		return 0, WarehouseStock{}, errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}

	granted := min(qty, s.Free())

	updated := s
	updated.reservedQty += granted
	updated.version++
	return granted, updated, nil
}

// Release returns qty previously reserved units to the free pool.
// Releasing more than is currently reserved violates the invariant and
// is rejected.
func (s WarehouseStock) Release(qty int) (WarehouseStock, error) {
	if err := s.Validate(); err != nil {
		return WarehouseStock{}, err
	}
	if qty <= 0 {
		return WarehouseStock{}, errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	if qty > s.reservedQty {
		return WarehouseStock{}, errs.NewValueIsOutOfRangeError("qty", qty, 1, s.reservedQty)
	}

	updated := s
	updated.reservedQty -= qty
	updated.version++
	return updated, nil
}

// Validate ensures the position was properly constructed.
func (s WarehouseStock) Validate() error {
	if !s.isConstructed {
		return ErrWarehouseStockIsNotConstructed
	}
	return nil
}
