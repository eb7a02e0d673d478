package order

import (
	"errors"
	"fmt"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/guard"
)

// ErrOrderLineIsNotConstructed is returned when an OrderLine was not created
// through the NewOrderLine constructor.
var ErrOrderLineIsNotConstructed = errors.New("OrderLine must be created via NewOrderLine constructor")

// OrderLine is a single line item of an order: a SKU and the quantity
// requested for it. OrderLine is an immutable value object; once the order
// is accepted its lines never change. Stock allocation works line by line
// against these values.
//
// Example:
//
//	line, err := order.NewOrderLine("SKU-TSHIRT-M", 10)
//	if err != nil {
//	    // Handle validation error
//	}
type OrderLine struct { //nolint:recvcheck //using for validation
	sku   string
	qty   int
	guard guard.ConstructorGuard
}

// NewOrderLine creates an order line for the given SKU and quantity.
// The SKU must be non-empty and the quantity positive.
func NewOrderLine(sku string, qty int) (OrderLine, error) {
	line := OrderLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setSKU(sku),
		line.setQty(qty),
	); err != nil {
		return OrderLine{}, err
	}

	return line, nil
}

// SKU returns the stock keeping unit identifier of the line.
func (l OrderLine) SKU() string {
	return l.sku
}

// Qty returns the requested quantity of the line.
func (l OrderLine) Qty() int {
	return l.qty
}

// Validate ensures the line was created through NewOrderLine.
func (l OrderLine) Validate() error {
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

func (l *OrderLine) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	l.sku = sku
	return nil
}

func (l *OrderLine) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty", fmt.Errorf("%d is not greater than 0", qty))
	}
	l.qty = qty
	return nil
}
