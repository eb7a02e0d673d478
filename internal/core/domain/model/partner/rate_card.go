package partner

import (
	"errors"
	"fmt"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrRateCardIsNotConstructed is returned when a RateCard was not created
// through the NewRateCard constructor.
var ErrRateCardIsNotConstructed = errors.New("RateCard must be created via NewRateCard constructor")

// RateCard is a partner's commercial rate structure. All money values use
// arbitrary-precision decimals; rates are quoted, compared, and ranked, so
// float rounding artifacts must not influence partner ordering.
//
// The quoted rate for a shipment is:
//
//	baseRate + perKgRate × weight × (1 + fuelSurchargePct) + codCharge
//
// where codCharge applies only to COD shipments and is the greater of the
// fixed COD fee and codPct × codAmount.
type RateCard struct { //nolint:recvcheck //using for validation
	baseRate         decimal.Decimal
	perKgRate        decimal.Decimal
	fuelSurchargePct decimal.Decimal
	codFixedCharge   decimal.Decimal
	codPct           decimal.Decimal

	guard guard.ConstructorGuard
}

// NewRateCard creates a validated rate card.
//
// Validation rules:
//   - baseRate and perKgRate must not be negative
//   - fuelSurchargePct is a fraction (0.10 = 10%) and must lie in [0, 1]
//   - codFixedCharge and codPct must not be negative; codPct must not exceed 1
func NewRateCard(
	baseRate decimal.Decimal,
	perKgRate decimal.Decimal,
	fuelSurchargePct decimal.Decimal,
	codFixedCharge decimal.Decimal,
	codPct decimal.Decimal,
) (RateCard, error) {
	if baseRate.IsNegative() {
		return RateCard{}, errs.NewValueIsInvalidErrorWithCause("base rate",
			fmt.Errorf("%s is negative", baseRate))
	}
	if perKgRate.IsNegative() {
		return RateCard{}, errs.NewValueIsInvalidErrorWithCause("per kg rate",
			fmt.Errorf("%s is negative", perKgRate))
	}
	if fuelSurchargePct.IsNegative() || fuelSurchargePct.GreaterThan(decimal.NewFromInt(1)) {
		return RateCard{}, errs.NewValueIsOutOfRangeError("fuel surcharge pct", fuelSurchargePct.String(), 0, 1)
	}
	if codFixedCharge.IsNegative() {
		return RateCard{}, errs.NewValueIsInvalidErrorWithCause("cod fixed charge",
			fmt.Errorf("%s is negative", codFixedCharge))
	}
	if codPct.IsNegative() || codPct.GreaterThan(decimal.NewFromInt(1)) {
		return RateCard{}, errs.NewValueIsOutOfRangeError("cod pct", codPct.String(), 0, 1)
	}

	return RateCard{
		baseRate:         baseRate,
		perKgRate:        perKgRate,
		fuelSurchargePct: fuelSurchargePct,
		codFixedCharge:   codFixedCharge,
		codPct:           codPct,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// BaseRate returns the flat rate component.
func (c RateCard) BaseRate() decimal.Decimal {
	return c.baseRate
}

// PerKgRate returns the weight-proportional rate component.
func (c RateCard) PerKgRate() decimal.Decimal {
	return c.perKgRate
}

// FuelSurchargePct returns the fuel surcharge fraction applied to the
// weight component.
func (c RateCard) FuelSurchargePct() decimal.Decimal {
	return c.fuelSurchargePct
}

// CODCharge returns the collection charge for a COD amount: the greater of
// the fixed COD fee and codPct × codAmount.
func (c RateCard) CODCharge(codAmount decimal.Decimal) decimal.Decimal {
	pctCharge := c.codPct.Mul(codAmount)
	if pctCharge.GreaterThan(c.codFixedCharge) {
		return pctCharge
	}
	return c.codFixedCharge
}

// Quote computes the shipment rate for the given chargeable weight,
// payment mode, and COD amount.
func (c RateCard) Quote(weightKg float64, mode order.PaymentMode, codAmount decimal.Decimal) (decimal.Decimal, error) {
	if err := c.Validate(); err != nil {
		return decimal.Zero, err
	}
	if weightKg <= 0 {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%g is not greater than 0", weightKg))
	}
	if err := mode.Validate(); err != nil {
		return decimal.Zero, err
	}

	weight := decimal.NewFromFloat(weightKg)
	surchargeFactor := decimal.NewFromInt(1).Add(c.fuelSurchargePct)

	rate := c.baseRate.Add(c.perKgRate.Mul(weight).Mul(surchargeFactor))
	if mode == order.COD {
		rate = rate.Add(c.CODCharge(codAmount))
	}

	return rate, nil
}

// Validate ensures the rate card was created through NewRateCard.
func (c RateCard) Validate() error {
	return c.guard.Validate(ErrRateCardIsNotConstructed)
}
