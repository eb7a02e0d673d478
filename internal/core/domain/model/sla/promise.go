package sla

import (
	"fmt"
	"time"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
)

// RiskLevel grades how tight a promise is against the route's physical
// network transit time at the moment the promise is made.
type RiskLevel int

const (
	// RiskLevelUnknown represents an invalid or undefined risk level.
	RiskLevelUnknown RiskLevel = iota

	// RiskLow means ample slack between network transit and the promise.
	RiskLow

	// RiskMedium means 10 to 30% slack.
	RiskMedium

	// RiskHigh means less than 10% slack; any operational delay is likely
	// to breach the promise.
	RiskHigh
)

func getRiskLevelStrings() map[RiskLevel]string {
	return map[RiskLevel]string{
		RiskLevelUnknown: "UNKNOWN",
		RiskLow:          "LOW",
		RiskMedium:       "MEDIUM",
		RiskHigh:         "HIGH",
	}
}

// RiskLevelFromString parses the wire form of a risk level.
func RiskLevelFromString(s string) (RiskLevel, error) {
	for level, str := range getRiskLevelStrings() {
		if level != RiskLevelUnknown && str == s {
			return level, nil
		}
	}
	return RiskLevelUnknown, errs.NewValueIsInvalidErrorWithCause("risk level",
		fmt.Errorf("%q is not a valid risk level", s))
}

// Validate checks if the RiskLevel value is valid.
func (r RiskLevel) Validate() error {
	if r != RiskLow && r != RiskMedium && r != RiskHigh {
		return errs.NewValueIsInvalidErrorWithCause("risk level",
			fmt.Errorf("%d is not a valid risk level", r))
	}
	return nil
}

// String returns the wire form of the risk level.
func (r RiskLevel) String() string {
	if str, ok := getRiskLevelStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Promise is the delivery-date commitment computed for an order. It is a
// result record: computed once at orchestration time and immutable
// thereafter unless explicitly recalculated.
//
// When no route is configured for the pincode pair the destination is
// unserviceable: IsAchievable is false, TATDays is zero, and the promised
// date is the zero time. Callers must check IsAchievable before relying on
// the dates.
type Promise struct {
	// PromisedDeliveryDate is placedAt plus TATDays calendar days,
	// skipping configured non-working days.
	PromisedDeliveryDate time.Time

	// TATDays is the promised turnaround in days.
	TATDays int

	// NetworkTransitDays is the route's physical line-haul time the
	// promise was graded against.
	NetworkTransitDays int

	// Risk grades the slack between network transit and the promise.
	Risk RiskLevel

	// IsAchievable is false only when no route exists for the pincode
	// pair, i.e. the destination is unserviceable.
	IsAchievable bool

	// PlacedAt anchors elapsed-fraction computation for snapshots.
	PlacedAt time.Time
}

// TotalAllowed returns the full duration between placement and the
// promised delivery date.
func (p Promise) TotalAllowed() time.Duration {
	return p.PromisedDeliveryDate.Sub(p.PlacedAt)
}
