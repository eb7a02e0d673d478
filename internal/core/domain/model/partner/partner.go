package partner

import (
	"errors"
	"fmt"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
)

var (
	// ErrPartnerIsNotConstructed is returned when a Partner was not created
	// through the NewPartner constructor.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")

	// ErrServiceabilityIsRequired is returned when a partner declares no
	// delivery coverage at all.
	ErrServiceabilityIsRequired = errors.New("partner must declare at least one delivery range")
)

// LaneKey builds the "originZone-destZone" key under which per-lane
// transit estimates are stored.
func LaneKey(originZone string, destZone string) string {
	return originZone + "-" + destZone
}

// Partner is a courier partner as the selection engine sees it: an
// identity, a serviceability footprint (pickup and delivery pincode
// ranges), a commercial rate card, a historical reliability score, and
// nominal per-lane transit estimates.
//
// Partner is immutable within the engine; rate or coverage changes arrive
// as a fresh catalog read.
type Partner struct {
	code             string
	name             string
	pickupRanges     []kernel.PincodeRange
	deliveryRanges   []kernel.PincodeRange
	rateCard         RateCard
	reliabilityScore float64
	laneTATDays      map[string]int
	defaultTATDays   int

	isConstructed bool
}

// NewPartner creates a validated courier partner.
//
// Validation rules:
//   - code and name must be non-empty
//   - at least one delivery range is required; empty pickup ranges mean
//     the partner picks up everywhere
//   - the rate card must be constructed
//   - reliabilityScore must lie in [0, 100]
//   - defaultTATDays and every lane TAT must be positive
func NewPartner(
	code string,
	name string,
	pickupRanges []kernel.PincodeRange,
	deliveryRanges []kernel.PincodeRange,
	rateCard RateCard,
	reliabilityScore float64,
	laneTATDays map[string]int,
	defaultTATDays int,
) (*Partner, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("partner code")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("partner name")
	}
	if len(deliveryRanges) == 0 {
		return nil, ErrServiceabilityIsRequired
	}
	for _, r := range append(append([]kernel.PincodeRange{}, pickupRanges...), deliveryRanges...) {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	if err := rateCard.Validate(); err != nil {
		return nil, err
	}
	if reliabilityScore < 0 || reliabilityScore > 100 {
		return nil, errs.NewValueIsOutOfRangeError("reliability score", reliabilityScore, 0, 100)
	}
	if defaultTATDays <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("default tat days",
			fmt.Errorf("%d is not greater than 0", defaultTATDays))
	}
	for lane, days := range laneTATDays {
		if days <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("lane tat days",
				fmt.Errorf("lane %s has non-positive tat %d", lane, days))
		}
	}

	lanes := make(map[string]int, len(laneTATDays))
	for lane, days := range laneTATDays {
		lanes[lane] = days
	}

	return &Partner{
		code:             code,
		name:             name,
		pickupRanges:     append([]kernel.PincodeRange{}, pickupRanges...),
		deliveryRanges:   append([]kernel.PincodeRange{}, deliveryRanges...),
		rateCard:         rateCard,
		reliabilityScore: reliabilityScore,
		laneTATDays:      lanes,
		defaultTATDays:   defaultTATDays,
		isConstructed:    true,
	}, nil
}

// Code returns the partner's unique code.
func (p *Partner) Code() string {
	return p.code
}

// Name returns the partner's display name.
func (p *Partner) Name() string {
	return p.name
}

// RateCard returns the partner's commercial rate card.
func (p *Partner) RateCard() RateCard {
	return p.rateCard
}

// ReliabilityScore returns the historical delivery reliability on a
// 0 to 100 scale.
func (p *Partner) ReliabilityScore() float64 {
	return p.reliabilityScore
}

// IsServiceable reports whether the partner can carry a shipment from
// origin to destination: the origin must fall in a pickup range (or the
// partner must declare none, meaning nationwide pickup) and the
// destination must fall in a delivery range.
func (p *Partner) IsServiceable(origin kernel.Pincode, destination kernel.Pincode) bool {
	if len(p.pickupRanges) > 0 && !containsPincode(p.pickupRanges, origin) {
		return false
	}
	return containsPincode(p.deliveryRanges, destination)
}

// EstimatedTATDays returns the partner's nominal transit estimate for the
// route, falling back to the partner-wide default when the lane has no
// specific estimate.
func (p *Partner) EstimatedTATDays(origin kernel.Pincode, destination kernel.Pincode) int {
	if days, ok := p.laneTATDays[LaneKey(origin.Zone(), destination.Zone())]; ok {
		return days
	}
	return p.defaultTATDays
}

// Validate ensures the partner was created through NewPartner.
func (p *Partner) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartnerIsNotConstructed
	}
	return nil
}

func containsPincode(ranges []kernel.PincodeRange, pin kernel.Pincode) bool {
	for _, r := range ranges {
		if r.Contains(pin) {
			return true
		}
	}
	return false
}
