package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/sla"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/services"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
)

// fallbackTATDays is the conservative turnaround quoted when the route
// table cannot be reached and a simulated promise is substituted.
const fallbackTATDays = 7

// OrchestrationResult is the combined outcome of one orchestration run.
type OrchestrationResult struct {
	OrderID          kernel.UUID
	Promise          sla.Promise
	Allocation       services.AllocationResult
	PartnerSelection services.PartnerSelectionResult

	// Steps records every pipeline step with its status, duration and
	// the collaborator error behind a degraded result, in execution
	// order.
	Steps []StepOutcome

	// Degraded is true when any engine output was substituted with a
	// simulated result after an infrastructure failure. Degraded results
	// must be revalidated before fulfillment proceeds past picklist.
	Degraded bool
}

// OrchestrateOrderCommandHandler coordinates the decision pipeline for an
// accepted order.
//
// The SLA engine and the allocation engine run concurrently since neither
// depends on the other's output; the partner selector runs after both,
// because SLA compatibility needs the promise. Infrastructure failures in
// an engine degrade the run instead of aborting it: the failed output is
// replaced with a conservative simulated result and the whole run is
// flagged Degraded. Business rejections (validation failures) are never
// substituted and abort the run.
//
// Persistence is all-or-nothing. If the transaction fails after stock was
// reserved, every reservation is released before the error is returned.
type OrchestrateOrderCommandHandler struct {
	uowFactory       OrderUoWFactory
	slaEngine        *services.SLAEngine
	allocationEngine *services.AllocationEngine
	partnerSelector  *services.PartnerSelector
	config           services.EngineConfig
	logger           *slog.Logger
}

// NewOrchestrateOrderCommandHandler creates a handler wiring the three
// decision engines to transactional order persistence.
func NewOrchestrateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	slaEngine *services.SLAEngine,
	allocationEngine *services.AllocationEngine,
	partnerSelector *services.PartnerSelector,
	config services.EngineConfig,
	logger *slog.Logger,
) (OrchestrateOrderCommandHandler, error) {
	if uowFactory == nil {
		return OrchestrateOrderCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if slaEngine == nil {
		return OrchestrateOrderCommandHandler{}, errs.NewValueIsRequiredError("slaEngine")
	}
	if allocationEngine == nil {
		return OrchestrateOrderCommandHandler{}, errs.NewValueIsRequiredError("allocationEngine")
	}
	if partnerSelector == nil {
		return OrchestrateOrderCommandHandler{}, errs.NewValueIsRequiredError("partnerSelector")
	}
	if err := config.Validate(); err != nil {
		return OrchestrateOrderCommandHandler{}, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return OrchestrateOrderCommandHandler{
		uowFactory:       uowFactory,
		slaEngine:        slaEngine,
		allocationEngine: allocationEngine,
		partnerSelector:  partnerSelector,
		config:           config,
		logger:           logger,
	}, nil
}

// Handle runs promise computation, stock allocation and partner selection
// for the order and persists the order with its promise. Every step's
// status and runtime land on the result, so callers can tell which
// outputs are real and which were substituted.
func (h OrchestrateOrderCommandHandler) Handle(ctx context.Context, cmd OrchestrateOrderCommand) (OrchestrationResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrchestrationResult{}, err
	}

	ord, err := cmd.toOrder()
	if err != nil {
		return OrchestrationResult{}, err
	}
	profile, err := sla.ProfileForOrder(ord)
	if err != nil {
		return OrchestrationResult{}, err
	}

	result := OrchestrationResult{OrderID: ord.ID()}

	var (
		promiseErr     error
		allocationErr  error
		promiseTook    time.Duration
		allocationTook time.Duration
	)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		engineCtx, cancel := context.WithTimeout(ctx, h.config.CollaboratorTimeout)
		defer cancel()
		started := time.Now()
		result.Promise, promiseErr = h.slaEngine.ComputePromise(engineCtx, profile)
		promiseTook = time.Since(started)
	}()
	go func() {
		defer wg.Done()
		engineCtx, cancel := context.WithTimeout(ctx, h.config.CollaboratorTimeout)
		defer cancel()
		started := time.Now()
		result.Allocation, allocationErr = h.allocationEngine.Allocate(engineCtx, ord)
		allocationTook = time.Since(started)
	}()
	wg.Wait()

	if promiseErr != nil {
		if isBusinessRejection(promiseErr) {
			h.releaseOnFailure(ctx, result.Allocation)
			return OrchestrationResult{}, promiseErr
		}
		result.Promise = h.simulatedPromise(ord)
		result.Degraded = true
		h.logger.Warn("promise computation degraded, substituting simulated promise",
			"orderId", ord.ID().String(), "error", promiseErr)
	}
	result.Steps = append(result.Steps, newStepOutcome(StepSLAPromise, promiseTook, promiseErr))
	if allocationErr != nil {
		if isBusinessRejection(allocationErr) {
			return OrchestrationResult{}, allocationErr
		}
		result.Allocation = simulatedAllocation(ord)
		result.Degraded = true
		h.logger.Warn("stock allocation degraded, substituting simulated allocation",
			"orderId", ord.ID().String(), "error", allocationErr)
	}
	result.Steps = append(result.Steps, newStepOutcome(StepStockAllocation, allocationTook, allocationErr))

	selectionCtx, cancel := context.WithTimeout(ctx, h.config.CollaboratorTimeout)
	selectionStarted := time.Now()
	result.PartnerSelection, err = h.partnerSelector.SelectPartner(selectionCtx, ord, result.Promise)
	selectionTook := time.Since(selectionStarted)
	cancel()
	if err != nil {
		if isBusinessRejection(err) {
			h.releaseOnFailure(ctx, result.Allocation)
			return OrchestrationResult{}, err
		}
		result.PartnerSelection = services.PartnerSelectionResult{}
		result.Degraded = true
		h.logger.Warn("partner selection degraded, continuing without a recommendation",
			"orderId", ord.ID().String(), "error", err)
	}
	result.Steps = append(result.Steps, newStepOutcome(StepPartnerSelection, selectionTook, err))

	if err = h.advanceStages(ord, result); err != nil {
		h.releaseOnFailure(ctx, result.Allocation)
		return OrchestrationResult{}, err
	}

	if err = h.persist(ctx, ord, result.Promise); err != nil {
		h.releaseOnFailure(ctx, result.Allocation)
		return OrchestrationResult{}, err
	}

	return result, nil
}

// advanceStages moves the order through the lifecycle stages the pipeline
// completed. Allocation must fully succeed before the order leaves
// ORDER_RECEIVED; a shortfall parks the order for manual action.
func (h OrchestrateOrderCommandHandler) advanceStages(ord *order.Order, result OrchestrationResult) error {
	if !result.Allocation.Success {
		return nil
	}
	if err := ord.AdvanceTo(order.InventoryAllocation); err != nil {
		return err
	}
	if result.PartnerSelection.Recommended == nil {
		return nil
	}
	return ord.AdvanceTo(order.PartnerSelection)
}

func (h OrchestrateOrderCommandHandler) persist(ctx context.Context, ord *order.Order, promise sla.Promise) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if err := orderRepo.Add(ctx, ord); err != nil {
		return err
	}
	if err := orderRepo.SavePromise(ctx, ord.ID(), promise); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// releaseOnFailure returns reserved stock when the run cannot complete.
// Runs detached from ctx so cancellation cannot strand reservations.
func (h OrchestrateOrderCommandHandler) releaseOnFailure(ctx context.Context, allocation services.AllocationResult) {
	if err := h.allocationEngine.ReleaseAllocations(context.WithoutCancel(ctx), allocation); err != nil {
		h.logger.Error("failed to release reservations after orchestration failure", "error", err)
	}
}

// simulatedPromise is the conservative stand-in used when the route table
// is unreachable: a long turnaround flagged high risk.
func (h OrchestrateOrderCommandHandler) simulatedPromise(ord *order.Order) sla.Promise {
	date := ord.PlacedAt()
	for remaining := fallbackTATDays; remaining > 0; {
		date = date.AddDate(0, 0, 1)
		if h.config.IsWorkingDay(date.Weekday()) {
			remaining--
		}
	}
	return sla.Promise{
		PromisedDeliveryDate: date,
		TATDays:              fallbackTATDays,
		NetworkTransitDays:   fallbackTATDays,
		Risk:                 sla.RiskHigh,
		IsAchievable:         true,
		PlacedAt:             ord.PlacedAt(),
	}
}

// simulatedAllocation assumes every line can be served from the preferred
// warehouse without reserving anything. The Simulated flag tells
// downstream consumers that no stock is actually held.
func simulatedAllocation(ord *order.Order) services.AllocationResult {
	warehouseCode := ord.PreferredWarehouse()
	if warehouseCode == "" {
		warehouseCode = "UNVERIFIED"
	}
	lines := make([]services.LineAllocation, 0, len(ord.Lines()))
	for _, line := range ord.Lines() {
		lines = append(lines, services.LineAllocation{
			SKU:          line.SKU(),
			RequestedQty: line.Qty(),
			Allocations: []services.Allocation{{
				WarehouseCode: warehouseCode,
				AllocatedQty:  line.Qty(),
				HopLevel:      0,
			}},
		})
	}
	return services.AllocationResult{
		Lines:     lines,
		Strategy:  services.SingleWarehouse,
		Success:   true,
		Simulated: true,
	}
}

// isBusinessRejection classifies errors that must never be masked by
// degraded mode: validation and not-found outcomes speak about the
// request itself, not about infrastructure health.
func isBusinessRejection(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, errs.ErrVersionIsInvalid) ||
		errors.Is(err, errs.ErrObjectNotFound)
}
