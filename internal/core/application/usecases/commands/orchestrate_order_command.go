package commands

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/guard"
)

var ErrOrchestrateOrderCommandIsNotConstructed = errors.New(
	"OrchestrateOrderCommand must be created via NewOrchestrateOrderCommand constructor",
)

// OrchestrateOrderCommand represents a request to run the full decision
// pipeline for a newly accepted order: compute the delivery promise,
// allocate warehouse stock and select a courier partner, then persist the
// order with its promise.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewOrchestrateOrderCommand(orderID, lines, origin, destination,
//	    order.Express, order.Prepaid, decimal.Zero, 2.5, time.Now(), "WH-DEL-01")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("orchestration failed: %w", err)
//	}
//	fmt.Printf("Promise: %s, partner: %v", result.Promise.PromisedDeliveryDate, result.PartnerSelection.Recommended)
type OrchestrateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	lines              []order.OrderLine
	originPincode      kernel.Pincode
	destinationPincode kernel.Pincode
	orderType          order.OrderType
	paymentMode        order.PaymentMode
	codAmount          decimal.Decimal
	weightKg           float64
	placedAt           time.Time
	preferredWarehouse string

	guard guard.ConstructorGuard
}

// NewOrchestrateOrderCommand creates a command carrying a complete order
// intake. Field validation is delegated to the order aggregate
// constructor, so the command accepts exactly what a valid order accepts.
func NewOrchestrateOrderCommand(
	orderID kernel.UUID,
	lines []order.OrderLine,
	originPincode kernel.Pincode,
	destinationPincode kernel.Pincode,
	orderType order.OrderType,
	paymentMode order.PaymentMode,
	codAmount decimal.Decimal,
	weightKg float64,
	placedAt time.Time,
	preferredWarehouse string,
) (OrchestrateOrderCommand, error) {
	// Building a throwaway aggregate exercises every validation rule the
	// handler will rely on later.
	if _, err := order.NewOrder(orderID, lines, originPincode, destinationPincode,
		orderType, paymentMode, codAmount, weightKg, placedAt, preferredWarehouse); err != nil {
		return OrchestrateOrderCommand{}, err
	}

	return OrchestrateOrderCommand{
		orderID:            orderID,
		lines:              lines,
		originPincode:      originPincode,
		destinationPincode: destinationPincode,
		orderType:          orderType,
		paymentMode:        paymentMode,
		codAmount:          codAmount,
		weightKg:           weightKg,
		placedAt:           placedAt,
		preferredWarehouse: preferredWarehouse,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrOrchestrateOrderCommandIsNotConstructed if validation fails.
func (c OrchestrateOrderCommand) Validate() error {
	return c.guard.Validate(ErrOrchestrateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c OrchestrateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// toOrder materializes the order aggregate the pipeline operates on.
func (c OrchestrateOrderCommand) toOrder() (*order.Order, error) {
	return order.NewOrder(c.orderID, c.lines, c.originPincode, c.destinationPincode,
		c.orderType, c.paymentMode, c.codAmount, c.weightKg, c.placedAt, c.preferredWarehouse)
}
