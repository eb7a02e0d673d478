package queries

import (
	"errors"
	"time"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/guard"
)

var ErrGetUndeliveredOrdersQueryIsNotConstructed = errors.New(
	"GetUndeliveredOrdersQuery must be created via NewGetUndeliveredOrdersQuery constructor",
)

// GetUndeliveredOrdersQuery retrieves every order that has not reached
// the Delivered stage, with its promised delivery date. Backs the
// compliance monitor and operational dashboards.
type GetUndeliveredOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUndeliveredOrdersQuery creates a query to retrieve in-flight
// orders. This is a parameterless query.
func NewGetUndeliveredOrdersQuery() GetUndeliveredOrdersQuery {
	return GetUndeliveredOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUndeliveredOrdersQueryIsNotConstructed if validation fails.
func (q GetUndeliveredOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUndeliveredOrdersQueryIsNotConstructed)
}

// GetUndeliveredOrdersQueryResponse is one in-flight order row.
// PromisedDeliveryDate is nil for orders without a stored promise.
type GetUndeliveredOrdersQueryResponse struct {
	ID                   kernel.UUID
	DestinationPincode   kernel.Pincode
	Stage                order.Stage
	PlacedAt             time.Time
	PromisedDeliveryDate *time.Time
}
