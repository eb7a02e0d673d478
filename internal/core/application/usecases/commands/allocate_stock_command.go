package commands

import (
	"errors"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/guard"
)

var ErrAllocateStockCommandIsNotConstructed = errors.New(
	"AllocateStockCommand must be created via NewAllocateStockCommand constructor",
)

// AllocateStockCommand requests a standalone stock allocation for a
// stored order, used to retry allocation after a shortfall or a degraded
// orchestration run.
type AllocateStockCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAllocateStockCommand creates a command to allocate stock for the
// order with the given identifier.
func NewAllocateStockCommand(orderID kernel.UUID) (AllocateStockCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AllocateStockCommand{}, err
	}
	return AllocateStockCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAllocateStockCommandIsNotConstructed if validation fails.
func (c AllocateStockCommand) Validate() error {
	return c.guard.Validate(ErrAllocateStockCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to allocate.
func (c AllocateStockCommand) OrderID() kernel.UUID {
	return c.orderID
}
