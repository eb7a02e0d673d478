package ports

import (
	"context"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/sla"
)

// OrderRepository defines the persistence contract for order aggregates
// and the delivery promises and lifecycle milestones attached to them.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current lifecycle stage.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUndelivered retrieves all orders that have not yet reached the
	// Delivered stage. Used by the compliance monitor to sweep in-flight
	// orders against their promises.
	GetAllUndelivered(ctx context.Context) ([]*order.Order, error)

	// SavePromise stores the delivery promise computed for the order,
	// replacing any previously stored promise.
	SavePromise(ctx context.Context, id kernel.UUID, promise sla.Promise) error

	// GetPromise retrieves the delivery promise stored for the order.
	GetPromise(ctx context.Context, id kernel.UUID) (sla.Promise, error)

	// GetMilestones retrieves the recorded lifecycle milestones for the
	// order, one per stage reached, in stage order.
	GetMilestones(ctx context.Context, id kernel.UUID) ([]sla.Milestone, error)
}
