package order

import (
	"fmt"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
)

// OrderType classifies the service level sold to the customer. The type
// influences the delivery promise: express and priority orders are promised
// tighter turnaround times than the quoted base for the route.
type OrderType int

const (
	// OrderTypeUnknown represents an invalid or undefined order type.
	OrderTypeUnknown OrderType = iota

	// Standard is the default service level; the promise equals the
	// route's quoted base turnaround time.
	Standard

	// Express promises one day less than the route's quoted base.
	Express

	// Priority promises two days less than the route's quoted base.
	Priority
)

func getOrderTypeStrings() map[OrderType]string {
	return map[OrderType]string{
		OrderTypeUnknown: "UNKNOWN",
		Standard:         "STANDARD",
		Express:          "EXPRESS",
		Priority:         "PRIORITY",
	}
}

func getValidOrderTypeStrings() map[OrderType]string {
	//nolint:exhaustive // OrderTypeUnknown is intentionally excluded as it's invalid
	return map[OrderType]string{
		Standard: "STANDARD",
		Express:  "EXPRESS",
		Priority: "PRIORITY",
	}
}

// OrderTypeFromString parses the wire form of an order type.
func OrderTypeFromString(s string) (OrderType, error) {
	for t, str := range getValidOrderTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return OrderTypeUnknown, errs.NewValueIsInvalidErrorWithCause("order type",
		fmt.Errorf("%q is not a valid order type", s))
}

// Validate checks if the OrderType value is valid.
func (t OrderType) Validate() error {
	if _, ok := getValidOrderTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order type",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the wire form of the order type.
func (t OrderType) String() string {
	if str, ok := getOrderTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// TATReductionDays returns the number of days subtracted from the route's
// quoted base turnaround when promising an order of this type. The promise
// is never reduced below the route's network transit time.
func (t OrderType) TATReductionDays() int {
	switch t {
	case Express:
		return 1
	case Priority:
		return 2
	default:
		return 0
	}
}
