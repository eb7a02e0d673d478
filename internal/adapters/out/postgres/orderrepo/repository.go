package orderrepo

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/sla"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database and records the milestone for its
// current stage.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	// The first milestone is anchored at placement, later ones at now.
	if err := r.recordMilestone(ctx, aggregate.ID(), order.OrderReceived, aggregate.PlacedAt()); err != nil {
		return err
	}
	if aggregate.Stage() != order.OrderReceived {
		if err := r.recordMilestone(ctx, aggregate.ID(), aggregate.Stage(), time.Now().UTC()); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. A stage that has not
// been recorded yet gets a milestone row with the current time.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.recordMilestone(ctx, aggregate.ID(), aggregate.Stage(), time.Now().UTC()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID including its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUndelivered retrieves all orders that have not reached the
// Delivered stage.
func (r *GormOrderRepository) GetAllUndelivered(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Find(&dtos, "stage != ?", order.Delivered.String()).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// SavePromise stores the delivery promise for the order, replacing any
// previously stored promise.
func (r *GormOrderRepository) SavePromise(ctx context.Context, id kernel.UUID, promise sla.Promise) error {
	if err := id.Validate(); err != nil {
		return err
	}

	dto := promiseFromDomain(id, promise)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// GetPromise retrieves the delivery promise stored for the order.
func (r *GormOrderRepository) GetPromise(ctx context.Context, id kernel.UUID) (sla.Promise, error) {
	if err := id.Validate(); err != nil {
		return sla.Promise{}, err
	}

	var dto PromiseDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sla.Promise{}, errs.NewObjectNotFoundError("promise", id.String())
		}
		return sla.Promise{}, err
	}

	return promiseToDomain(dto)
}

// GetMilestones retrieves the recorded lifecycle milestones for the
// order, in stage order.
func (r *GormOrderRepository) GetMilestones(ctx context.Context, id kernel.UUID) ([]sla.Milestone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dtos []MilestoneDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "order_id = ?", id.Bytes()).Error; err != nil {
		return nil, err
	}

	milestones := make([]sla.Milestone, 0, len(dtos))
	for _, dto := range dtos {
		milestone, err := milestoneToDomain(dto)
		if err != nil {
			return nil, err
		}
		milestones = append(milestones, milestone)
	}

	// Stage strings do not sort chronologically, so order by stage ordinal.
	sort.Slice(milestones, func(i, j int) bool {
		return milestones[i].Stage < milestones[j].Stage
	})

	return milestones, nil
}

// recordMilestone inserts the milestone row for a reached stage. The
// unique (order, stage) index makes repeated recording idempotent.
func (r *GormOrderRepository) recordMilestone(ctx context.Context, id kernel.UUID, stage order.Stage, occurredAt time.Time) error {
	dto := MilestoneDTO{
		OrderID:    id.Bytes(),
		Stage:      stage.String(),
		OccurredAt: &occurredAt,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}, {Name: "stage"}},
			DoNothing: true,
		}).
		Create(&dto).Error
}
