package services

import (
	"math"
	"time"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
)

// PriorityOrder selects the ranking criterion the allocation engine uses
// when ordering candidate warehouses.
type PriorityOrder int

const (
	// PriorityOrderUnknown is the zero value and fails validation.
	PriorityOrderUnknown PriorityOrder = iota

	// PriorityOrderSLAFirst ranks warehouses by outbound transit time.
	PriorityOrderSLAFirst

	// PriorityOrderCostFirst ranks warehouses by outbound shipping cost.
	PriorityOrderCostFirst
)

func getPriorityOrderStrings() map[PriorityOrder]string {
	return map[PriorityOrder]string{
		PriorityOrderUnknown:   "UNKNOWN",
		PriorityOrderSLAFirst:  "SLA_FIRST",
		PriorityOrderCostFirst: "COST_FIRST",
	}
}

func getValidPriorityOrderStrings() map[PriorityOrder]string {
	valid := getPriorityOrderStrings()
	delete(valid, PriorityOrderUnknown)
	return valid
}

// PriorityOrderFromString parses the wire form of a priority order.
func PriorityOrderFromString(s string) (PriorityOrder, error) {
	for priority, str := range getValidPriorityOrderStrings() {
		if str == s {
			return priority, nil
		}
	}
	return PriorityOrderUnknown, errs.NewValueIsInvalidError("priorityOrder")
}

// Validate checks that the priority order is one of the known values.
func (p PriorityOrder) Validate() error {
	if _, ok := getValidPriorityOrderStrings()[p]; !ok {
		return errs.NewValueIsInvalidError("priorityOrder")
	}
	return nil
}

// String returns the wire form of the priority order.
func (p PriorityOrder) String() string {
	if str, ok := getPriorityOrderStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}

const weightSumTolerance = 1e-9

// ScoringWeights are the relative weights of the three partner scoring
// dimensions. The weights must each lie in [0, 1] and sum to exactly 1.
type ScoringWeights struct {
	Cost        float64
	Speed       float64
	Reliability float64
}

// Validate checks weight ranges and that the weights sum to 1 within
// floating point tolerance.
func (w ScoringWeights) Validate() error {
	for name, v := range map[string]float64{
		"costWeight":        w.Cost,
		"speedWeight":       w.Speed,
		"reliabilityWeight": w.Reliability,
	} {
		if v < 0 || v > 1 {
			return errs.NewValueIsOutOfRangeError(name, v, 0.0, 1.0)
		}
	}
	if math.Abs(w.Cost+w.Speed+w.Reliability-1.0) > weightSumTolerance {
		return errs.NewValueIsInvalidError("scoringWeights")
	}
	return nil
}

// EngineConfig is the shared tuning surface of the decision engines. One
// config is validated at composition time and passed to every engine, so
// hop limits, weights and thresholds cannot drift apart within a run.
type EngineConfig struct {
	// MaxHops bounds multi-warehouse hopping. Zero restricts allocation
	// to the single best warehouse per line.
	MaxHops int

	// SplitOrderAllowed permits allocating one order across warehouses.
	// When false, any allocation that would span more than one warehouse
	// is rolled back and reported as a shortfall instead.
	SplitOrderAllowed bool

	// Priority selects the warehouse ranking criterion.
	Priority PriorityOrder

	// Weights drive the partner composite score.
	Weights ScoringWeights

	// AtRiskThreshold is the elapsed fraction of the promise window at
	// which an undelivered order becomes AT_RISK.
	AtRiskThreshold float64

	// CriticalThreshold is the elapsed fraction at which an AT_RISK
	// order is additionally flagged critical. Must exceed AtRiskThreshold.
	CriticalThreshold float64

	// CutoffHour is the local hour after which an order is treated as
	// placed the next day for promise computation.
	CutoffHour int

	// NonWorkingDays are weekdays skipped when projecting the promised
	// delivery date.
	NonWorkingDays []time.Weekday

	// CollaboratorTimeout bounds each call to an external collaborator
	// during orchestration.
	CollaboratorTimeout time.Duration
}

// DefaultEngineConfig returns the standard production tuning.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		MaxHops:           3,
		SplitOrderAllowed: true,
		Priority:          PriorityOrderSLAFirst,
		Weights: ScoringWeights{
			Cost:        0.40,
			Speed:       0.35,
			Reliability: 0.25,
		},
		AtRiskThreshold:     0.75,
		CriticalThreshold:   0.90,
		CutoffHour:          14,
		NonWorkingDays:      []time.Weekday{time.Sunday},
		CollaboratorTimeout: 5 * time.Second,
	}
}

// Validate checks every field of the config. Engine constructors call it
// so an engine can never be built over a broken config.
func (c EngineConfig) Validate() error {
	if c.MaxHops < 0 {
		return errs.NewValueIsOutOfRangeError("maxHops", c.MaxHops, 0, math.MaxInt)
	}
	if err := c.Priority.Validate(); err != nil {
		return err
	}
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.AtRiskThreshold <= 0 || c.AtRiskThreshold > 1 {
		return errs.NewValueIsOutOfRangeError("atRiskThreshold", c.AtRiskThreshold, 0.0, 1.0)
	}
	if c.CriticalThreshold <= 0 || c.CriticalThreshold > 1 {
		return errs.NewValueIsOutOfRangeError("criticalThreshold", c.CriticalThreshold, 0.0, 1.0)
	}
	if c.CriticalThreshold <= c.AtRiskThreshold {
		return errs.NewValueIsInvalidError("criticalThreshold")
	}
	if c.CutoffHour < 0 || c.CutoffHour > 23 {
		return errs.NewValueIsOutOfRangeError("cutoffHour", c.CutoffHour, 0, 23)
	}
	if len(c.NonWorkingDays) >= 7 {
		return errs.NewValueIsInvalidError("nonWorkingDays")
	}
	if c.CollaboratorTimeout <= 0 {
		return errs.NewValueIsRequiredError("collaboratorTimeout")
	}
	return nil
}

// IsWorkingDay reports whether the weekday counts toward the promise.
func (c EngineConfig) IsWorkingDay(day time.Weekday) bool {
	for _, d := range c.NonWorkingDays {
		if d == day {
			return false
		}
	}
	return true
}
