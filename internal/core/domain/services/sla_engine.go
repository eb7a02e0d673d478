package services

import (
	"context"
	"time"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/sla"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/ports"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
)

// Slack fractions separating the promise risk bands. Slack is the spare
// time in the promise relative to the route's network transit time.
const (
	highRiskSlack   = 0.10
	mediumRiskSlack = 0.30
)

// SLAEngine computes delivery promises and tracks compliance against them.
//
// Promise computation is a pure function of the route table entry, the
// order profile and the engine config: the same inputs always yield the
// same promise. Compliance tracking is likewise pure in the promise, the
// milestone timeline and the evaluation clock, so snapshots can be
// recomputed freely and are never persisted.
//
// Business rules:
//   - The promised turnaround starts from the route's quoted standard
//     turnaround and is shortened for express and priority orders, but
//     never below the physical network transit time.
//   - Orders placed at or after the cutoff hour count as placed the next
//     day.
//   - The promised date is projected over working days only.
//   - A pincode pair with no route is unserviceable: the promise is
//     returned with IsAchievable false rather than an error.
type SLAEngine struct {
	routes ports.RouteTable
	config EngineConfig
}

// NewSLAEngine creates an SLA engine over the given route table.
//
// Parameters:
//   - routes: The zone-to-zone route reference table
//   - config: Validated engine tuning (thresholds, cutoff, calendar)
//
// Returns:
//   - *SLAEngine: The engine, ready for promise computation
//   - error: Validation error when routes is nil or config is invalid
func NewSLAEngine(routes ports.RouteTable, config EngineConfig) (*SLAEngine, error) {
	if routes == nil {
		return nil, errs.NewValueIsRequiredError("routes")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &SLAEngine{routes: routes, config: config}, nil
}

// ComputePromise computes the delivery promise for an order profile.
//
// Parameters:
//   - ctx: Carries the collaborator deadline for the route lookup
//   - profile: The validated order profile (type, lane, placement time)
//
// Returns:
//   - sla.Promise: The promise; check IsAchievable before using dates
//   - error: Route table failures or an invalid route entry
func (e *SLAEngine) ComputePromise(ctx context.Context, profile sla.Profile) (sla.Promise, error) {
	if err := profile.Validate(); err != nil {
		return sla.Promise{}, err
	}

	entry, found, err := e.routes.Route(ctx, profile.OriginPincode(), profile.DestinationPincode())
	if err != nil {
		return sla.Promise{}, err
	}
	if !found {
		return sla.Promise{
			IsAchievable: false,
			PlacedAt:     profile.PlacedAt(),
		}, nil
	}
	if entry.TransitDays < 1 || entry.BaseTATDays < entry.TransitDays {
		return sla.Promise{}, errs.NewValueIsInvalidError("routeEntry")
	}

	tat := entry.BaseTATDays - profile.OrderType().TATReductionDays()
	if floor := max(entry.TransitDays, 1); tat < floor {
		tat = floor
	}

	placedAt := profile.PlacedAt()
	start := placedAt
	if start.Hour() >= e.config.CutoffHour {
		start = start.AddDate(0, 0, 1)
	}

	return sla.Promise{
		PromisedDeliveryDate: e.projectWorkingDays(start, tat),
		TATDays:              tat,
		NetworkTransitDays:   entry.TransitDays,
		Risk:                 gradeRisk(tat, entry.TransitDays),
		IsAchievable:         true,
		PlacedAt:             placedAt,
	}, nil
}

// TrackCompliance evaluates a promise against the order's milestone
// timeline at the given instant.
//
// Once a Delivered milestone carries a timestamp the outcome is frozen:
// on time yields ON_TRACK and late yields BREACHED, regardless of now.
// For undelivered orders the status derives from the elapsed fraction of
// the allowed window and flips to BREACHED once the promised date passes.
//
// Parameters:
//   - promise: The stored promise (must be achievable)
//   - milestones: The recorded lifecycle milestones, possibly empty
//   - now: The evaluation instant
//
// Returns:
//   - sla.Snapshot: The derived compliance view
//   - error: Validation error for unachievable or degenerate promises
func (e *SLAEngine) TrackCompliance(promise sla.Promise, milestones []sla.Milestone, now time.Time) (sla.Snapshot, error) {
	if !promise.IsAchievable {
		return sla.Snapshot{}, errs.NewValueIsInvalidError("promise")
	}
	allowed := promise.TotalAllowed()
	if allowed <= 0 {
		return sla.Snapshot{}, errs.NewValueIsInvalidError("promise")
	}

	if deliveredAt := deliveredAt(milestones); deliveredAt != nil {
		status := sla.OnTrack
		if deliveredAt.After(promise.PromisedDeliveryDate) {
			status = sla.Breached
		}
		return sla.Snapshot{
			Status:          status,
			ElapsedFraction: elapsedFraction(promise, *deliveredAt, allowed),
			EvaluatedAt:     now,
		}, nil
	}

	fraction := elapsedFraction(promise, now, allowed)
	snapshot := sla.Snapshot{
		Status:          sla.OnTrack,
		ElapsedFraction: fraction,
		EvaluatedAt:     now,
	}
	switch {
	case now.After(promise.PromisedDeliveryDate):
		snapshot.Status = sla.Breached
	case fraction >= e.config.CriticalThreshold:
		snapshot.Status = sla.AtRisk
		snapshot.Critical = true
	case fraction >= e.config.AtRiskThreshold:
		snapshot.Status = sla.AtRisk
	}
	return snapshot, nil
}

// projectWorkingDays advances from start by days working days, skipping
// the configured non-working weekdays.
func (e *SLAEngine) projectWorkingDays(start time.Time, days int) time.Time {
	date := start
	for remaining := days; remaining > 0; {
		date = date.AddDate(0, 0, 1)
		if e.config.IsWorkingDay(date.Weekday()) {
			remaining--
		}
	}
	return date
}

// gradeRisk bands the promise slack relative to network transit time.
func gradeRisk(tatDays int, transitDays int) sla.RiskLevel {
	slack := float64(tatDays-transitDays) / float64(transitDays)
	switch {
	case slack < highRiskSlack:
		return sla.RiskHigh
	case slack <= mediumRiskSlack:
		return sla.RiskMedium
	default:
		return sla.RiskLow
	}
}

// deliveredAt returns the Delivered milestone timestamp, or nil when the
// order has not been delivered yet.
func deliveredAt(milestones []sla.Milestone) *time.Time {
	for _, m := range milestones {
		if m.Stage == order.Delivered && m.OccurredAt != nil {
			return m.OccurredAt
		}
	}
	return nil
}

func elapsedFraction(promise sla.Promise, at time.Time, allowed time.Duration) float64 {
	fraction := float64(at.Sub(promise.PlacedAt)) / float64(allowed)
	if fraction < 0 {
		return 0
	}
	return fraction
}
