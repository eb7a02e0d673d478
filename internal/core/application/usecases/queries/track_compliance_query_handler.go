package queries

import (
	"context"
	"time"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/sla"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/services"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/ports"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
)

// TrackComplianceQueryResponse bundles the stored promise with the
// compliance snapshot derived from it.
type TrackComplianceQueryResponse struct {
	OrderID  kernel.UUID
	Promise  sla.Promise
	Snapshot sla.Snapshot
}

// TrackComplianceQueryHandler loads the promise and milestone timeline of
// an order and derives its compliance snapshot through the SLA engine.
type TrackComplianceQueryHandler struct {
	orders    ports.OrderRepository
	slaEngine *services.SLAEngine
}

// NewTrackComplianceQueryHandler creates a handler for compliance queries.
func NewTrackComplianceQueryHandler(
	orders ports.OrderRepository,
	slaEngine *services.SLAEngine,
) (TrackComplianceQueryHandler, error) {
	if orders == nil {
		return TrackComplianceQueryHandler{}, errs.NewValueIsRequiredError("orders")
	}
	if slaEngine == nil {
		return TrackComplianceQueryHandler{}, errs.NewValueIsRequiredError("slaEngine")
	}
	return TrackComplianceQueryHandler{orders: orders, slaEngine: slaEngine}, nil
}

// Handle derives the compliance snapshot of the order at the query's
// evaluation instant.
func (h TrackComplianceQueryHandler) Handle(ctx context.Context, query TrackComplianceQuery) (TrackComplianceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackComplianceQueryResponse{}, err
	}

	promise, err := h.orders.GetPromise(ctx, query.OrderID())
	if err != nil {
		return TrackComplianceQueryResponse{}, err
	}
	milestones, err := h.orders.GetMilestones(ctx, query.OrderID())
	if err != nil {
		return TrackComplianceQueryResponse{}, err
	}

	asOf := query.AsOf()
	if asOf.IsZero() {
		asOf = time.Now()
	}

	snapshot, err := h.slaEngine.TrackCompliance(promise, milestones, asOf)
	if err != nil {
		return TrackComplianceQueryResponse{}, err
	}

	return TrackComplianceQueryResponse{
		OrderID:  query.OrderID(),
		Promise:  promise,
		Snapshot: snapshot,
	}, nil
}
