package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/adapters/out/memory"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/sla"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/services"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/ports"
)

// Monday, before the 14:00 cutoff.
var placedMonday = time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)

func mustProfile(t *testing.T, orderType order.OrderType, placedAt time.Time) sla.Profile {
	t.Helper()
	profile, err := sla.NewProfile(orderType, mustPincode(t, "110042"), mustPincode(t, "400001"), placedAt)
	require.NoError(t, err)
	return profile
}

func newSLAEngine(t *testing.T, routes ports.RouteTable) *services.SLAEngine {
	t.Helper()
	engine, err := services.NewSLAEngine(routes, services.DefaultEngineConfig())
	require.NoError(t, err)
	return engine
}

func singleRouteTable(transitDays int, baseTATDays int) *memory.RouteTable {
	table := memory.NewRouteTable()
	table.SetRoute("1", "4", ports.RouteEntry{TransitDays: transitDays, BaseTATDays: baseTATDays})
	return table
}

func TestSLAEngine_ComputePromise(t *testing.T) {
	ctx := context.Background()

	t.Run("should promise the route's base turnaround for a standard order", func(t *testing.T) {
		engine := newSLAEngine(t, singleRouteTable(3, 4))

		promise, err := engine.ComputePromise(ctx, mustProfile(t, order.Standard, placedMonday))

		require.NoError(t, err)
		assert.True(t, promise.IsAchievable)
		assert.Equal(t, 4, promise.TATDays)
		assert.Equal(t, 3, promise.NetworkTransitDays)
		assert.Equal(t, time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC), promise.PromisedDeliveryDate)
		assert.Equal(t, placedMonday, promise.PlacedAt)
	})

	t.Run("should shorten the promise for express orders", func(t *testing.T) {
		engine := newSLAEngine(t, singleRouteTable(3, 4))

		promise, err := engine.ComputePromise(ctx, mustProfile(t, order.Express, placedMonday))

		require.NoError(t, err)
		assert.Equal(t, 3, promise.TATDays)
		assert.Equal(t, time.Date(2025, time.March, 6, 10, 0, 0, 0, time.UTC), promise.PromisedDeliveryDate)
	})

	t.Run("should never promise below the network transit time", func(t *testing.T) {
		engine := newSLAEngine(t, singleRouteTable(3, 4))

		promise, err := engine.ComputePromise(ctx, mustProfile(t, order.Priority, placedMonday))

		require.NoError(t, err)
		assert.Equal(t, 3, promise.TATDays, "priority reduction of 2 must floor at transit time")
	})

	t.Run("should shift the start by one day at or after the cutoff hour", func(t *testing.T) {
		engine := newSLAEngine(t, singleRouteTable(3, 4))
		placedLate := time.Date(2025, time.March, 3, 15, 0, 0, 0, time.UTC)

		promise, err := engine.ComputePromise(ctx, mustProfile(t, order.Standard, placedLate))

		require.NoError(t, err)
		assert.Equal(t, 4, promise.TATDays)
		assert.Equal(t, time.Date(2025, time.March, 8, 15, 0, 0, 0, time.UTC), promise.PromisedDeliveryDate)
	})

	t.Run("should skip non-working days when projecting the date", func(t *testing.T) {
		engine := newSLAEngine(t, singleRouteTable(1, 2))
		placedFriday := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)

		promise, err := engine.ComputePromise(ctx, mustProfile(t, order.Standard, placedFriday))

		require.NoError(t, err)
		// Saturday counts, Sunday is skipped, Monday completes the promise.
		assert.Equal(t, time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC), promise.PromisedDeliveryDate)
	})

	t.Run("should grade risk from the slack over network transit", func(t *testing.T) {
		tests := []struct {
			name        string
			transitDays int
			baseTATDays int
			orderType   order.OrderType
			want        sla.RiskLevel
		}{
			{"no slack is high risk", 3, 4, order.Express, sla.RiskHigh},
			{"quarter slack is medium risk", 4, 5, order.Standard, sla.RiskMedium},
			{"third slack is low risk", 3, 4, order.Standard, sla.RiskLow},
			{"tight lane with generous buffer is low risk", 1, 2, order.Standard, sla.RiskLow},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				engine := newSLAEngine(t, singleRouteTable(tt.transitDays, tt.baseTATDays))

				promise, err := engine.ComputePromise(ctx, mustProfile(t, tt.orderType, placedMonday))

				require.NoError(t, err)
				assert.Equal(t, tt.want, promise.Risk)
			})
		}
	})

	t.Run("should mark unrouted destinations unachievable without error", func(t *testing.T) {
		engine := newSLAEngine(t, memory.NewRouteTable())

		promise, err := engine.ComputePromise(ctx, mustProfile(t, order.Standard, placedMonday))

		require.NoError(t, err)
		assert.False(t, promise.IsAchievable)
		assert.Zero(t, promise.TATDays)
		assert.True(t, promise.PromisedDeliveryDate.IsZero())
	})

	t.Run("should surface route table failures", func(t *testing.T) {
		tableErr := errors.New("route table unavailable")
		engine := newSLAEngine(t, failingRouteTable{err: tableErr})

		_, err := engine.ComputePromise(ctx, mustProfile(t, order.Standard, placedMonday))

		assert.ErrorIs(t, err, tableErr)
	})

	t.Run("should reject a route entry with transit above the quoted turnaround", func(t *testing.T) {
		engine := newSLAEngine(t, singleRouteTable(5, 3))

		_, err := engine.ComputePromise(ctx, mustProfile(t, order.Standard, placedMonday))

		assert.Error(t, err)
	})
}

func TestSLAEngine_TrackCompliance(t *testing.T) {
	engine := newSLAEngine(t, singleRouteTable(3, 4))

	// A 100 hour window makes elapsed fractions easy to read.
	promise := sla.Promise{
		PromisedDeliveryDate: placedMonday.Add(100 * time.Hour),
		TATDays:              4,
		NetworkTransitDays:   3,
		Risk:                 sla.RiskLow,
		IsAchievable:         true,
		PlacedAt:             placedMonday,
	}

	deliveredMilestone := func(at time.Time) []sla.Milestone {
		milestone, err := sla.NewMilestone(order.Delivered, &at)
		require.NoError(t, err)
		return []sla.Milestone{milestone}
	}

	t.Run("should report on track while comfortably inside the window", func(t *testing.T) {
		snapshot, err := engine.TrackCompliance(promise, nil, placedMonday.Add(50*time.Hour))

		require.NoError(t, err)
		assert.Equal(t, sla.OnTrack, snapshot.Status)
		assert.False(t, snapshot.Critical)
		assert.InDelta(t, 0.5, snapshot.ElapsedFraction, 1e-9)
	})

	t.Run("should report at risk past the alert threshold", func(t *testing.T) {
		snapshot, err := engine.TrackCompliance(promise, nil, placedMonday.Add(80*time.Hour))

		require.NoError(t, err)
		assert.Equal(t, sla.AtRisk, snapshot.Status)
		assert.False(t, snapshot.Critical)
	})

	t.Run("should flag critical past the critical threshold", func(t *testing.T) {
		snapshot, err := engine.TrackCompliance(promise, nil, placedMonday.Add(95*time.Hour))

		require.NoError(t, err)
		assert.Equal(t, sla.AtRisk, snapshot.Status)
		assert.True(t, snapshot.Critical)
	})

	t.Run("should report breached once the promised date has passed", func(t *testing.T) {
		snapshot, err := engine.TrackCompliance(promise, nil, placedMonday.Add(101*time.Hour))

		require.NoError(t, err)
		assert.Equal(t, sla.Breached, snapshot.Status)
		assert.False(t, snapshot.Critical)
		assert.Greater(t, snapshot.ElapsedFraction, 1.0)
	})

	t.Run("should freeze the outcome at the delivery timestamp", func(t *testing.T) {
		milestones := deliveredMilestone(placedMonday.Add(90 * time.Hour))

		snapshot, err := engine.TrackCompliance(promise, milestones, placedMonday.Add(500*time.Hour))

		require.NoError(t, err)
		assert.Equal(t, sla.OnTrack, snapshot.Status)
		assert.InDelta(t, 0.9, snapshot.ElapsedFraction, 1e-9)
	})

	t.Run("should report breached for a late delivery", func(t *testing.T) {
		milestones := deliveredMilestone(placedMonday.Add(110 * time.Hour))

		snapshot, err := engine.TrackCompliance(promise, milestones, placedMonday.Add(500*time.Hour))

		require.NoError(t, err)
		assert.Equal(t, sla.Breached, snapshot.Status)
	})

	t.Run("should reject an unachievable promise", func(t *testing.T) {
		_, err := engine.TrackCompliance(sla.Promise{PlacedAt: placedMonday}, nil, placedMonday)

		assert.Error(t, err)
	})
}
