package commands

import (
	"context"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/services"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
)

// AllocateStockCommandHandler runs the allocation engine against a stored
// order and records the stage transition when allocation fully succeeds.
// Reservations are released if the transaction cannot be committed.
type AllocateStockCommandHandler struct {
	uowFactory       OrderUoWFactory
	allocationEngine *services.AllocationEngine
}

// NewAllocateStockCommandHandler creates a handler for standalone stock
// allocation operations.
func NewAllocateStockCommandHandler(
	uowFactory OrderUoWFactory,
	allocationEngine *services.AllocationEngine,
) (AllocateStockCommandHandler, error) {
	if uowFactory == nil {
		return AllocateStockCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if allocationEngine == nil {
		return AllocateStockCommandHandler{}, errs.NewValueIsRequiredError("allocationEngine")
	}
	return AllocateStockCommandHandler{
		uowFactory:       uowFactory,
		allocationEngine: allocationEngine,
	}, nil
}

// Handle loads the order, allocates stock for its lines and persists the
// stage transition inside a transaction.
func (h AllocateStockCommandHandler) Handle(ctx context.Context, cmd AllocateStockCommand) (services.AllocationResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.AllocationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.AllocationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return services.AllocationResult{}, err
	}

	result, err := h.allocationEngine.Allocate(ctx, ord)
	if err != nil {
		return services.AllocationResult{}, err
	}

	if result.Success {
		if err = ord.AdvanceTo(order.InventoryAllocation); err != nil {
			h.release(ctx, result)
			return services.AllocationResult{}, err
		}
		if err = orderRepo.Update(ctx, ord); err != nil {
			h.release(ctx, result)
			return services.AllocationResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		h.release(ctx, result)
		return services.AllocationResult{}, err
	}

	return result, nil
}

func (h AllocateStockCommandHandler) release(ctx context.Context, result services.AllocationResult) {
	_ = h.allocationEngine.ReleaseAllocations(context.WithoutCancel(ctx), result)
}
