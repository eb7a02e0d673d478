package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderLinesAreRequired is returned when an order is created without line items.
	ErrOrderLinesAreRequired = errors.New("order must have at least one line")

	// ErrCODAmountIsRequired is returned when a COD order carries no collectible amount.
	ErrCODAmountIsRequired = errors.New("COD orders must have a positive COD amount")
)

// Order is the aggregate root handed to the orchestration engine once a
// customer order is accepted. It carries everything the three decision
// steps need: line items for allocation, the route and placement time for
// the delivery promise, and weight/payment data for partner rating.
//
// Order tracks its position in the fulfillment lifecycle through a Stage
// state machine; the engine advances it through the first three stages
// (ORDER_RECEIVED, INVENTORY_ALLOCATION, PARTNER_SELECTION) and downstream
// systems take over from there.
//
// Orders are immutable after acceptance except for the lifecycle stage.
type Order struct {
	id                 kernel.UUID
	lines              []OrderLine
	originPincode      kernel.Pincode
	destinationPincode kernel.Pincode
	orderType          OrderType
	paymentMode        PaymentMode
	codAmount          decimal.Decimal
	weightKg           float64
	placedAt           time.Time
	preferredWarehouse string
	stage              Stage

	isConstructed bool
}

// NewOrder creates a new Order in the OrderReceived stage.
//
// Validation rules:
//   - id, pincodes, order type and payment mode must be valid
//   - at least one valid line is required
//   - chargeable weight must be positive
//   - COD orders must carry a positive COD amount
//   - placedAt must not be the zero time
//
// preferredWarehouse is optional; when non-empty, allocation tries that
// warehouse before any alternates.
func NewOrder(
	id kernel.UUID,
	lines []OrderLine,
	originPincode kernel.Pincode,
	destinationPincode kernel.Pincode,
	orderType OrderType,
	paymentMode PaymentMode,
	codAmount decimal.Decimal,
	weightKg float64,
	placedAt time.Time,
	preferredWarehouse string,
) (*Order, error) {
	ord := &Order{
		stage:         OrderReceived,
		isConstructed: true,
	}

	if err := errors.Join(
		ord.setID(id),
		ord.setLines(lines),
		ord.setRoute(originPincode, destinationPincode),
		ord.setOrderType(orderType),
		ord.setPayment(paymentMode, codAmount),
		ord.setWeightKg(weightKg),
		ord.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	ord.preferredWarehouse = preferredWarehouse
	return ord, nil
}

// RestoreOrder reconstructs an order from persistence, including its
// current lifecycle stage. It applies the same validation as NewOrder.
func RestoreOrder(
	id kernel.UUID,
	lines []OrderLine,
	originPincode kernel.Pincode,
	destinationPincode kernel.Pincode,
	orderType OrderType,
	paymentMode PaymentMode,
	codAmount decimal.Decimal,
	weightKg float64,
	placedAt time.Time,
	preferredWarehouse string,
	stage Stage,
) (*Order, error) {
	ord, err := NewOrder(id, lines, originPincode, destinationPincode,
		orderType, paymentMode, codAmount, weightKg, placedAt, preferredWarehouse)
	if err != nil {
		return nil, err
	}

	if err = stage.Validate(); err != nil {
		return nil, err
	}

	ord.stage = stage
	return ord, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Lines returns the order's line items. The returned slice must not be
// mutated by callers.
func (o *Order) Lines() []OrderLine {
	return o.lines
}

// OriginPincode returns the fulfillment origin pincode.
func (o *Order) OriginPincode() kernel.Pincode {
	return o.originPincode
}

// DestinationPincode returns the delivery destination pincode.
func (o *Order) DestinationPincode() kernel.Pincode {
	return o.destinationPincode
}

// OrderType returns the service level of the order.
func (o *Order) OrderType() OrderType {
	return o.orderType
}

// PaymentMode returns the payment mode of the order.
func (o *Order) PaymentMode() PaymentMode {
	return o.paymentMode
}

// CODAmount returns the amount to collect on delivery; zero for prepaid orders.
func (o *Order) CODAmount() decimal.Decimal {
	return o.codAmount
}

// WeightKg returns the chargeable weight of the shipment in kilograms.
func (o *Order) WeightKg() float64 {
	return o.weightKg
}

// PlacedAt returns the order placement timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// PreferredWarehouse returns the optional preferred warehouse code,
// or an empty string when the caller expressed no preference.
func (o *Order) PreferredWarehouse() string {
	return o.preferredWarehouse
}

// Stage returns the order's current fulfillment lifecycle stage.
func (o *Order) Stage() Stage {
	return o.stage
}

// AdvanceTo moves the order to the target lifecycle stage.
// The transition must be allowed by the Stage state machine.
func (o *Order) AdvanceTo(target Stage) error {
	newStage, err := o.stage.TransitionTo(target)
	if err != nil {
		return err
	}

	o.stage = newStage
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("line %d", i), err)
		}
	}

	o.lines = make([]OrderLine, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setRoute(origin kernel.Pincode, destination kernel.Pincode) error {
	if err := origin.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("origin pincode", err)
	}
	if err := destination.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("destination pincode", err)
	}

	o.originPincode = origin
	o.destinationPincode = destination
	return nil
}

func (o *Order) setOrderType(orderType OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setPayment(mode PaymentMode, codAmount decimal.Decimal) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	if codAmount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("cod amount",
			fmt.Errorf("%s is negative", codAmount))
	}

	if mode == COD && !codAmount.IsPositive() {
		return ErrCODAmountIsRequired
	}

	o.paymentMode = mode
	o.codAmount = codAmount
	return nil
}

func (o *Order) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%g is not greater than 0", weightKg))
	}
	o.weightKg = weightKg
	return nil
}

func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placed at")
	}
	o.placedAt = placedAt
	return nil
}
