package kernel

import (
	"fmt"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/guard"
)

// PincodeLength is the number of digits in a valid postal pincode.
const PincodeLength = 6

// ErrPincodeIsNotConstructed is returned when attempting to use an improperly
// initialized Pincode. Pincodes must be created via NewPincode to ensure validity.
var ErrPincodeIsNotConstructed = errs.NewValueIsRequiredError(
	"pincode must be created via NewPincode constructor")

// Pincode represents a six-digit postal code identifying a delivery origin
// or destination. It is an immutable value object; the zero value is invalid
// and will fail validation.
//
// The leading digit of a pincode identifies its postal zone, the geographic
// grouping used to look up base transit times between an origin and a
// destination.
//
// Example:
//
//	pin, err := kernel.NewPincode("110042")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(pin.Zone()) // Output: "1"
type Pincode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewPincode creates a Pincode from its string form. The value must be
// exactly six ASCII digits with a non-zero leading digit.
func NewPincode(value string) (Pincode, error) {
	if value == "" {
		return Pincode{}, errs.NewValueIsRequiredError("pincode")
	}

	if len(value) != PincodeLength {
		return Pincode{}, errs.NewValueIsInvalidErrorWithCause("pincode",
			fmt.Errorf("%q is not %d digits long", value, PincodeLength))
	}

	for i, r := range value {
		if r < '0' || r > '9' {
			return Pincode{}, errs.NewValueIsInvalidErrorWithCause("pincode",
				fmt.Errorf("%q contains a non-digit character", value))
		}
		if i == 0 && r == '0' {
			return Pincode{}, errs.NewValueIsInvalidErrorWithCause("pincode",
				fmt.Errorf("%q starts with zero", value))
		}
	}

	return Pincode{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the six-digit string form of the pincode.
func (p Pincode) String() string {
	return p.value
}

// Zone returns the postal zone of the pincode, derived from its leading
// digit. Transit-time reference data is keyed by (origin zone, destination
// zone) pairs.
func (p Pincode) Zone() string {
	if p.value == "" {
		return ""
	}
	return p.value[:1]
}

// IsEqual compares two pincodes by value.
func (p Pincode) IsEqual(other Pincode) bool {
	return p.value == other.value
}

// Validate ensures the Pincode was properly constructed via NewPincode.
func (p Pincode) Validate() error {
	return p.guard.Validate(ErrPincodeIsNotConstructed)
}

// ErrPincodeRangeIsNotConstructed is returned when attempting to use an
// improperly initialized PincodeRange.
var ErrPincodeRangeIsNotConstructed = errs.NewValueIsRequiredError(
	"pincode range must be created via NewPincodeRange constructor")

// PincodeRange is an inclusive interval of pincodes. Courier partners
// declare the destinations they can serve as a set of ranges.
type PincodeRange struct { //nolint:recvcheck //using for validation
	from  Pincode
	to    Pincode
	guard guard.ConstructorGuard
}

// NewPincodeRange creates an inclusive range [from, to]. Both bounds must
// be valid pincodes and from must not exceed to.
func NewPincodeRange(from Pincode, to Pincode) (PincodeRange, error) {
	if err := from.Validate(); err != nil {
		return PincodeRange{}, err
	}
	if err := to.Validate(); err != nil {
		return PincodeRange{}, err
	}

	// Lexicographic order equals numeric order for equal-length digit strings.
	if from.value > to.value {
		return PincodeRange{}, errs.NewValueIsInvalidErrorWithCause("pincode range",
			fmt.Errorf("%s is greater than %s", from.value, to.value))
	}

	return PincodeRange{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// From returns the lower bound of the range.
func (r PincodeRange) From() Pincode {
	return r.from
}

// To returns the upper bound of the range.
func (r PincodeRange) To() Pincode {
	return r.to
}

// Contains reports whether the given pincode falls inside the range.
func (r PincodeRange) Contains(p Pincode) bool {
	return p.value >= r.from.value && p.value <= r.to.value
}

// Validate ensures the PincodeRange was properly constructed.
func (r PincodeRange) Validate() error {
	return r.guard.Validate(ErrPincodeRangeIsNotConstructed)
}
