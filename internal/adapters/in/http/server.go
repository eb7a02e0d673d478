// Package http exposes the orchestration engine over a JSON HTTP API.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/application/usecases/commands"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/application/usecases/queries"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	orchestrateOrderHandler commands.OrchestrateOrderCommandHandler
	allocateStockHandler    commands.AllocateStockCommandHandler

	// Query handlers
	computePromiseHandler       queries.ComputePromiseQueryHandler
	selectPartnerHandler        queries.SelectPartnerQueryHandler
	trackComplianceHandler      queries.TrackComplianceQueryHandler
	getUndeliveredOrdersHandler queries.GetUndeliveredOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	orchestrateOrderHandler commands.OrchestrateOrderCommandHandler,
	allocateStockHandler commands.AllocateStockCommandHandler,
	computePromiseHandler queries.ComputePromiseQueryHandler,
	selectPartnerHandler queries.SelectPartnerQueryHandler,
	trackComplianceHandler queries.TrackComplianceQueryHandler,
	getUndeliveredOrdersHandler queries.GetUndeliveredOrdersQueryHandler,
) *Server {
	return &Server{
		orchestrateOrderHandler:     orchestrateOrderHandler,
		allocateStockHandler:        allocateStockHandler,
		computePromiseHandler:       computePromiseHandler,
		selectPartnerHandler:        selectPartnerHandler,
		trackComplianceHandler:      trackComplianceHandler,
		getUndeliveredOrdersHandler: getUndeliveredOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.OrchestrateOrder)
	api.POST("/orders/:orderId/allocation", s.AllocateStock)
	api.POST("/promises", s.QuotePromise)
	api.GET("/orders/undelivered", s.GetUndeliveredOrders)
	api.GET("/orders/:orderId/partners", s.SelectPartner)
	api.GET("/orders/:orderId/compliance", s.TrackCompliance)
}

// OrchestrateOrder handles POST /api/v1/orders - runs the full
// orchestration pipeline for an incoming order.
func (s *Server) OrchestrateOrder(ctx echo.Context) error {
	var request OrchestrateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := s.buildOrchestrateCommand(request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	result, err := s.orchestrateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err, "Failed to orchestrate order")
	}

	return ctx.JSON(http.StatusCreated, orchestrationFromDomain(result))
}

// AllocateStock handles POST /api/v1/orders/:orderId/allocation -
// re-runs warehouse allocation for a stored order.
func (s *Server) AllocateStock(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewAllocateStockCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid allocation request: " + err.Error(),
		})
	}

	result, err := s.allocateStockHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err, "Failed to allocate stock")
	}

	return ctx.JSON(http.StatusOK, allocationFromDomain(result))
}

// QuotePromise handles POST /api/v1/promises - computes a delivery
// promise quote without creating an order.
func (s *Server) QuotePromise(ctx echo.Context) error {
	var request QuotePromiseRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderType, err := order.OrderTypeFromString(request.OrderType)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order type: " + err.Error(),
		})
	}

	origin, err := kernel.NewPincode(request.OriginPincode)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid origin pincode: " + err.Error(),
		})
	}

	destination, err := kernel.NewPincode(request.DestinationPincode)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid destination pincode: " + err.Error(),
		})
	}

	placedAt := time.Now().UTC()
	if request.PlacedAt != nil {
		placedAt = *request.PlacedAt
	}

	query, err := queries.NewComputePromiseQuery(orderType, origin, destination, placedAt)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid promise request: " + err.Error(),
		})
	}

	promise, err := s.computePromiseHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to compute promise")
	}

	return ctx.JSON(http.StatusOK, promiseFromDomain(promise))
}

// SelectPartner handles GET /api/v1/orders/:orderId/partners - scores
// the serviceable courier partners for a stored order.
func (s *Server) SelectPartner(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewSelectPartnerQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid partner selection request: " + err.Error(),
		})
	}

	result, err := s.selectPartnerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to select partner")
	}

	return ctx.JSON(http.StatusOK, partnerSelectionFromDomain(result))
}

// TrackCompliance handles GET /api/v1/orders/:orderId/compliance -
// evaluates the order's promise compliance. An optional asOf query
// parameter (RFC 3339) pins the evaluation instant.
func (s *Server) TrackCompliance(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var query queries.TrackComplianceQuery
	if raw := ctx.QueryParam("asOf"); raw != "" {
		asOf, parseErr := time.Parse(time.RFC3339, raw)
		if parseErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid asOf timestamp",
			})
		}
		query, err = queries.NewTrackComplianceQueryAsOf(orderID, asOf)
	} else {
		query, err = queries.NewTrackComplianceQuery(orderID)
	}
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid compliance request: " + err.Error(),
		})
	}

	response, err := s.trackComplianceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to evaluate compliance")
	}

	return ctx.JSON(http.StatusOK, ComplianceResponse{
		OrderID:         response.OrderID.String(),
		Promise:         promiseFromDomain(response.Promise),
		Status:          response.Snapshot.Status.String(),
		Critical:        response.Snapshot.Critical,
		ElapsedFraction: response.Snapshot.ElapsedFraction,
		EvaluatedAt:     response.Snapshot.EvaluatedAt,
	})
}

// GetUndeliveredOrders handles GET /api/v1/orders/undelivered -
// retrieves all orders that have not reached the Delivered stage.
func (s *Server) GetUndeliveredOrders(ctx echo.Context) error {
	rows, err := s.getUndeliveredOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetUndeliveredOrdersQuery())
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]UndeliveredOrder, len(rows))
	for i, row := range rows {
		response[i] = undeliveredFromDomain(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) buildOrchestrateCommand(request OrchestrateOrderRequest) (commands.OrchestrateOrderCommand, error) {
	orderID := kernel.NewUUID()
	if request.OrderID != "" {
		parsed, err := kernel.UUIDFromString(request.OrderID)
		if err != nil {
			return commands.OrchestrateOrderCommand{}, err
		}
		orderID = parsed
	}

	lines := make([]order.OrderLine, 0, len(request.Lines))
	for _, lineRequest := range request.Lines {
		line, err := order.NewOrderLine(lineRequest.Sku, lineRequest.Qty)
		if err != nil {
			return commands.OrchestrateOrderCommand{}, err
		}
		lines = append(lines, line)
	}

	origin, err := kernel.NewPincode(request.OriginPincode)
	if err != nil {
		return commands.OrchestrateOrderCommand{}, err
	}
	destination, err := kernel.NewPincode(request.DestinationPincode)
	if err != nil {
		return commands.OrchestrateOrderCommand{}, err
	}

	orderType, err := order.OrderTypeFromString(request.OrderType)
	if err != nil {
		return commands.OrchestrateOrderCommand{}, err
	}
	paymentMode, err := order.PaymentModeFromString(request.PaymentMode)
	if err != nil {
		return commands.OrchestrateOrderCommand{}, err
	}

	codAmount := decimal.Zero
	if request.CodAmount != "" {
		codAmount, err = decimal.NewFromString(request.CodAmount)
		if err != nil {
			return commands.OrchestrateOrderCommand{}, err
		}
	}

	placedAt := time.Now().UTC()
	if request.PlacedAt != nil {
		placedAt = *request.PlacedAt
	}

	return commands.NewOrchestrateOrderCommand(
		orderID, lines, origin, destination, orderType, paymentMode,
		codAmount, request.WeightKg, placedAt, request.PreferredWarehouse)
}

// writeError maps domain error categories onto HTTP statuses.
func (s *Server) writeError(ctx echo.Context, err error, message string) error {
	var notFoundErr *errs.ObjectNotFoundError
	switch {
	case errors.As(err, &notFoundErr):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: message + ": " + err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: message + ": " + err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}
