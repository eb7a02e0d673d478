package sla

import (
	"errors"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/guard"

	"time"
)

// ErrProfileIsNotConstructed is returned when a Profile was not created
// through the NewProfile constructor.
var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")

// Profile is the slice of order metadata the SLA engine needs to compute
// a delivery-date promise: the route, the service level, and the placement
// time. It is an immutable value object.
type Profile struct { //nolint:recvcheck //using for validation
	orderType          order.OrderType
	originPincode      kernel.Pincode
	destinationPincode kernel.Pincode
	placedAt           time.Time

	guard guard.ConstructorGuard
}

// NewProfile creates a validated SLA profile.
func NewProfile(
	orderType order.OrderType,
	originPincode kernel.Pincode,
	destinationPincode kernel.Pincode,
	placedAt time.Time,
) (Profile, error) {
	if err := orderType.Validate(); err != nil {
		return Profile{}, err
	}
	if err := originPincode.Validate(); err != nil {
		return Profile{}, errs.NewValueIsInvalidErrorWithCause("origin pincode", err)
	}
	if err := destinationPincode.Validate(); err != nil {
		return Profile{}, errs.NewValueIsInvalidErrorWithCause("destination pincode", err)
	}
	if placedAt.IsZero() {
		return Profile{}, errs.NewValueIsRequiredError("placed at")
	}

	return Profile{
		orderType:          orderType,
		originPincode:      originPincode,
		destinationPincode: destinationPincode,
		placedAt:           placedAt,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// ProfileForOrder builds the SLA profile of an accepted order.
func ProfileForOrder(ord *order.Order) (Profile, error) {
	if err := ord.Validate(); err != nil {
		return Profile{}, err
	}
	return NewProfile(ord.OrderType(), ord.OriginPincode(), ord.DestinationPincode(), ord.PlacedAt())
}

// OrderType returns the service level of the profile.
func (p Profile) OrderType() order.OrderType {
	return p.orderType
}

// OriginPincode returns the fulfillment origin.
func (p Profile) OriginPincode() kernel.Pincode {
	return p.originPincode
}

// DestinationPincode returns the delivery destination.
func (p Profile) DestinationPincode() kernel.Pincode {
	return p.destinationPincode
}

// PlacedAt returns the order placement timestamp.
func (p Profile) PlacedAt() time.Time {
	return p.placedAt
}

// Validate ensures the profile was created through NewProfile.
func (p Profile) Validate() error {
	return p.guard.Validate(ErrProfileIsNotConstructed)
}
