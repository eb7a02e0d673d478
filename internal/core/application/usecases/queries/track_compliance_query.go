package queries

import (
	"errors"
	"time"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/guard"
)

var ErrTrackComplianceQueryIsNotConstructed = errors.New(
	"TrackComplianceQuery must be created via NewTrackComplianceQuery constructor",
)

// TrackComplianceQuery asks for the current SLA compliance view of a
// stored order. The snapshot is derived on every call and never stored.
type TrackComplianceQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	asOf    time.Time

	guard guard.ConstructorGuard
}

// NewTrackComplianceQuery creates a compliance query evaluated at the
// current wall clock.
func NewTrackComplianceQuery(orderID kernel.UUID) (TrackComplianceQuery, error) {
	return NewTrackComplianceQueryAsOf(orderID, time.Time{})
}

// NewTrackComplianceQueryAsOf creates a compliance query evaluated at a
// fixed instant. A zero asOf means evaluation time is resolved by the
// handler.
func NewTrackComplianceQueryAsOf(orderID kernel.UUID, asOf time.Time) (TrackComplianceQuery, error) {
	if err := orderID.Validate(); err != nil {
		return TrackComplianceQuery{}, err
	}
	return TrackComplianceQuery{
		orderID: orderID,
		asOf:    asOf,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackComplianceQueryIsNotConstructed if validation fails.
func (q TrackComplianceQuery) Validate() error {
	return q.guard.Validate(ErrTrackComplianceQueryIsNotConstructed)
}

// OrderID returns the identifier of the order being tracked.
func (q TrackComplianceQuery) OrderID() kernel.UUID {
	return q.orderID
}

// AsOf returns the fixed evaluation instant, or the zero time when the
// handler should use the wall clock.
func (q TrackComplianceQuery) AsOf() time.Time {
	return q.asOf
}
