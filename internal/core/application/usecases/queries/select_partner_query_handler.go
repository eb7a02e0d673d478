package queries

import (
	"context"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/services"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/ports"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
)

// SelectPartnerQueryHandler loads the order and its promise, then ranks
// the serviceable partners through the partner selector.
type SelectPartnerQueryHandler struct {
	orders          ports.OrderRepository
	partnerSelector *services.PartnerSelector
}

// NewSelectPartnerQueryHandler creates a handler for partner selection
// queries. Requires read access to stored orders and promises.
func NewSelectPartnerQueryHandler(
	orders ports.OrderRepository,
	partnerSelector *services.PartnerSelector,
) (SelectPartnerQueryHandler, error) {
	if orders == nil {
		return SelectPartnerQueryHandler{}, errs.NewValueIsRequiredError("orders")
	}
	if partnerSelector == nil {
		return SelectPartnerQueryHandler{}, errs.NewValueIsRequiredError("partnerSelector")
	}
	return SelectPartnerQueryHandler{orders: orders, partnerSelector: partnerSelector}, nil
}

// Handle evaluates every serviceable partner for the stored order.
func (h SelectPartnerQueryHandler) Handle(ctx context.Context, query SelectPartnerQuery) (services.PartnerSelectionResult, error) {
	if err := query.Validate(); err != nil {
		return services.PartnerSelectionResult{}, err
	}

	ord, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return services.PartnerSelectionResult{}, err
	}
	promise, err := h.orders.GetPromise(ctx, query.OrderID())
	if err != nil {
		return services.PartnerSelectionResult{}, err
	}

	return h.partnerSelector.SelectPartner(ctx, ord, promise)
}
