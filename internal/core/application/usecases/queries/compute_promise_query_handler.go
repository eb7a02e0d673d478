package queries

import (
	"context"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/sla"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/services"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
)

// ComputePromiseQueryHandler delegates promise computation to the SLA
// engine without touching stored state.
type ComputePromiseQueryHandler struct {
	slaEngine *services.SLAEngine
}

// NewComputePromiseQueryHandler creates a handler for promise queries.
func NewComputePromiseQueryHandler(slaEngine *services.SLAEngine) (ComputePromiseQueryHandler, error) {
	if slaEngine == nil {
		return ComputePromiseQueryHandler{}, errs.NewValueIsRequiredError("slaEngine")
	}
	return ComputePromiseQueryHandler{slaEngine: slaEngine}, nil
}

// Handle computes the delivery promise for the queried profile.
func (h ComputePromiseQueryHandler) Handle(ctx context.Context, query ComputePromiseQuery) (sla.Promise, error) {
	if err := query.Validate(); err != nil {
		return sla.Promise{}, err
	}
	return h.slaEngine.ComputePromise(ctx, query.Profile())
}
