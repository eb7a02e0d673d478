package order

import (
	"fmt"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
)

// PaymentMode identifies how an order is paid. Cash-on-delivery orders
// attract an additional collection charge in courier partner rate cards.
type PaymentMode int

const (
	// PaymentModeUnknown represents an invalid or undefined payment mode.
	PaymentModeUnknown PaymentMode = iota

	// Prepaid orders are paid at checkout.
	Prepaid

	// COD orders are paid in cash to the courier on delivery.
	COD
)

func getPaymentModeStrings() map[PaymentMode]string {
	return map[PaymentMode]string{
		PaymentModeUnknown: "UNKNOWN",
		Prepaid:            "PREPAID",
		COD:                "COD",
	}
}

func getValidPaymentModeStrings() map[PaymentMode]string {
	//nolint:exhaustive // PaymentModeUnknown is intentionally excluded as it's invalid
	return map[PaymentMode]string{
		Prepaid: "PREPAID",
		COD:     "COD",
	}
}

// PaymentModeFromString parses the wire form of a payment mode.
func PaymentModeFromString(s string) (PaymentMode, error) {
	for m, str := range getValidPaymentModeStrings() {
		if str == s {
			return m, nil
		}
	}
	return PaymentModeUnknown, errs.NewValueIsInvalidErrorWithCause("payment mode",
		fmt.Errorf("%q is not a valid payment mode", s))
}

// Validate checks if the PaymentMode value is valid.
func (m PaymentMode) Validate() error {
	if _, ok := getValidPaymentModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment mode",
			fmt.Errorf("%d is not a valid payment mode", m))
	}
	return nil
}

// String returns the wire form of the payment mode.
func (m PaymentMode) String() string {
	if str, ok := getPaymentModeStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}
