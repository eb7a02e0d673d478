// Package queries contains read operations that never modify system
// state. Aggregate-shaped reads go through the repositories; list-shaped
// read models query the database directly, per CQRS.
package queries

import (
	"errors"
	"time"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/sla"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/guard"
)

var ErrComputePromiseQueryIsNotConstructed = errors.New(
	"ComputePromiseQuery must be created via NewComputePromiseQuery constructor",
)

// ComputePromiseQuery asks for the delivery promise of a hypothetical
// order: what would we commit to for this lane, service level and
// placement time. It is side effect free and does not require a stored
// order, so it backs quotation surfaces as well as orchestration.
//
// Example:
//
//	query, err := NewComputePromiseQuery(order.Express, origin, destination, time.Now())
//	if err != nil {
//	    return err
//	}
//	promise, err := handler.Handle(ctx, query)
type ComputePromiseQuery struct { //nolint:recvcheck //using for validation
	profile sla.Profile

	guard guard.ConstructorGuard
}

// NewComputePromiseQuery creates a promise query for the given lane and
// service level.
func NewComputePromiseQuery(
	orderType order.OrderType,
	originPincode kernel.Pincode,
	destinationPincode kernel.Pincode,
	placedAt time.Time,
) (ComputePromiseQuery, error) {
	profile, err := sla.NewProfile(orderType, originPincode, destinationPincode, placedAt)
	if err != nil {
		return ComputePromiseQuery{}, err
	}
	return ComputePromiseQuery{
		profile: profile,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrComputePromiseQueryIsNotConstructed if validation fails.
func (q ComputePromiseQuery) Validate() error {
	return q.guard.Validate(ErrComputePromiseQueryIsNotConstructed)
}

// Profile returns the SLA profile the promise is computed for.
func (q ComputePromiseQuery) Profile() sla.Profile {
	return q.profile
}
