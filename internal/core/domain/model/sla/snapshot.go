package sla

import (
	"fmt"
	"time"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
)

// Status is the compliance state of a promise at a point in time.
// For a fixed promise the status only moves forward as time passes:
// ON_TRACK -> AT_RISK -> BREACHED, never back.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// OnTrack means the promise is still comfortably achievable, or the
	// order was delivered within the promise.
	OnTrack

	// AtRisk means the elapsed fraction of the allowed time has crossed
	// the configured alert threshold.
	AtRisk

	// Breached means the promised delivery date has passed without
	// delivery, or delivery happened after it.
	Breached
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		OnTrack:       "ON_TRACK",
		AtRisk:        "AT_RISK",
		Breached:      "BREACHED",
	}
}

// StatusFromString parses the wire form of a compliance status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid compliance status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != OnTrack && s != AtRisk && s != Breached {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid compliance status", s))
	}
	return nil
}

// String returns the wire form of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Milestone is one timestamped step of an order's fulfillment timeline.
// Steps without a timestamp have not happened yet.
type Milestone struct {
	Stage      order.Stage
	OccurredAt *time.Time
}

// NewMilestone creates a milestone for a lifecycle stage. occurredAt may
// be nil for steps that have not been reached.
func NewMilestone(stage order.Stage, occurredAt *time.Time) (Milestone, error) {
	if err := stage.Validate(); err != nil {
		return Milestone{}, err
	}
	return Milestone{Stage: stage, OccurredAt: occurredAt}, nil
}

// Snapshot is the derived compliance view of a promise: recomputed on
// every status query from the promise, the wall clock, and the milestone
// timeline. It is never stored.
type Snapshot struct {
	// Status is the compliance state at evaluation time.
	Status Status

	// Critical marks the AT_RISK sub-state past the critical threshold.
	// It is always false outside AT_RISK.
	Critical bool

	// ElapsedFraction is elapsed time over total allowed time, clamped
	// to [0, +inf). Values above 1 mean the allowed window has passed.
	ElapsedFraction float64

	// EvaluatedAt is the wall-clock instant the snapshot was computed.
	EvaluatedAt time.Time
}
