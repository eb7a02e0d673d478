package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/stock"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/ports"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
)

var _ ports.InventoryStore = &InventoryStore{}

// InventoryStore keeps warehouse stock positions in process memory.
//
// Reservation attempts on the same key serialize on a per-key mutex, so
// the read-modify-write of reservedQty is atomic without optimistic
// retries. Outbound estimates are keyed by warehouse and destination zone,
// mirroring the reference data granularity of the persistent store.
type InventoryStore struct {
	mu        sync.RWMutex
	locks     map[stock.Key]*sync.Mutex
	positions map[stock.Key]stock.WarehouseStock
	estimates map[string]ports.OutboundEstimate
}

// NewInventoryStore creates an empty in-memory inventory store.
func NewInventoryStore() *InventoryStore {
	return &InventoryStore{
		locks:     make(map[stock.Key]*sync.Mutex),
		positions: make(map[stock.Key]stock.WarehouseStock),
		estimates: make(map[string]ports.OutboundEstimate),
	}
}

// SetStock stores a stock position, replacing any previous position for
// the same (warehouse, SKU) key.
func (s *InventoryStore) SetStock(position stock.WarehouseStock) error {
	if err := position.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.positions[position.Key()] = position
	return nil
}

// SetOutboundEstimate stores the dispatch estimate for a warehouse and
// destination zone.
func (s *InventoryStore) SetOutboundEstimate(warehouseCode string, zone string, estimate ports.OutboundEstimate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.estimates[estimateKey(warehouseCode, zone)] = estimate
}

// StockLevels returns the positions holding the SKU across all warehouses,
// ordered by warehouse code.
func (s *InventoryStore) StockLevels(ctx context.Context, sku string) ([]stock.WarehouseStock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sku == "" {
		return nil, errs.NewValueIsRequiredError("sku")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	positions := make([]stock.WarehouseStock, 0)
	for key, position := range s.positions {
		if key.SKU == sku {
			positions = append(positions, position)
		}
	}
	sort.Slice(positions, func(i, j int) bool {
		return positions[i].WarehouseCode() < positions[j].WarehouseCode()
	})
	return positions, nil
}

// OutboundEstimate returns the dispatch estimate for the warehouse and the
// destination's zone.
func (s *InventoryStore) OutboundEstimate(
	ctx context.Context, warehouseCode string, destination kernel.Pincode,
) (ports.OutboundEstimate, error) {
	if err := ctx.Err(); err != nil {
		return ports.OutboundEstimate{}, err
	}
	if err := destination.Validate(); err != nil {
		return ports.OutboundEstimate{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	estimate, ok := s.estimates[estimateKey(warehouseCode, destination.Zone())]
	if !ok {
		return ports.OutboundEstimate{}, errs.NewObjectNotFoundError(
			"outbound estimate", warehouseCode+"/"+destination.Zone())
	}
	return estimate, nil
}

// Reserve atomically reserves up to qty units at the key. It grants
// min(qty, free), possibly zero.
func (s *InventoryStore) Reserve(ctx context.Context, key stock.Key, qty int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	lock := s.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	position, err := s.position(key)
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

	s.mu.Lock()
	s.positions[key] = updated
	s.mu.Unlock()
	return granted, nil
}

// Release returns qty previously reserved units to the free pool.
func (s *InventoryStore) Release(ctx context.Context, key stock.Key, qty int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lock := s.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	position, err := s.position(key)
	if err != nil {
		return err
	}

	updated, err := position.Release(qty)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.positions[key] = updated
	s.mu.Unlock()
	return nil
}

func (s *InventoryStore) position(key stock.Key) (stock.WarehouseStock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	position, ok := s.positions[key]
	if !ok {
		return stock.WarehouseStock{}, errs.NewObjectNotFoundError("warehouse stock", key.String())
	}
	return position, nil
}

func (s *InventoryStore) keyLock(key stock.Key) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

func estimateKey(warehouseCode string, zone string) string {
	return warehouseCode + "/" + zone
}
