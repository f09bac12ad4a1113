package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTripStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.TripStatus
		to   domain.TripStatus
		want bool
	}{
		{name: "planned to running", from: domain.TripPlanned, to: domain.TripRunning, want: true},
		{name: "planned to cancelled", from: domain.TripPlanned, to: domain.TripCancelled, want: true},
		{name: "planned to completed skips running", from: domain.TripPlanned, to: domain.TripCompleted, want: false},
		{name: "running to completed", from: domain.TripRunning, to: domain.TripCompleted, want: true},
		{name: "running to cancelled", from: domain.TripRunning, to: domain.TripCancelled, want: true},
		{name: "running back to planned", from: domain.TripRunning, to: domain.TripPlanned, want: false},
		{name: "completed is terminal", from: domain.TripCompleted, to: domain.TripCancelled, want: false},
		{name: "cancelled is terminal", from: domain.TripCancelled, to: domain.TripRunning, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTrip_EffectiveWindow(t *testing.T) {
	plannedStart := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	plannedEnd := plannedStart.Add(48 * time.Hour)
	actualStart := plannedStart.Add(2 * time.Hour)
	actualEnd := plannedEnd.Add(5 * time.Hour)

	t.Run("planned trip uses planned window", func(t *testing.T) {
		trip := domain.Trip{PlannedStart: plannedStart, PlannedEnd: plannedEnd, Status: domain.TripPlanned}
		assert.Equal(t, plannedStart, trip.EffectiveStart())
		end, bounded := trip.EffectiveEnd()
		assert.True(t, bounded)
		assert.Equal(t, plannedEnd, end)
	})

	t.Run("running trip without actual end is open-ended", func(t *testing.T) {
		trip := domain.Trip{PlannedStart: plannedStart, PlannedEnd: plannedEnd, Status: domain.TripRunning, ActualStart: &actualStart}
		assert.Equal(t, actualStart, trip.EffectiveStart())
		_, bounded := trip.EffectiveEnd()
		assert.False(t, bounded)
	})

	t.Run("completed trip uses actual window", func(t *testing.T) {
		trip := domain.Trip{
			PlannedStart: plannedStart,
			PlannedEnd:   plannedEnd,
			Status:       domain.TripCompleted,
			ActualStart:  &actualStart,
			ActualEnd:    &actualEnd,
		}
		assert.Equal(t, actualStart, trip.EffectiveStart())
		end, bounded := trip.EffectiveEnd()
		assert.True(t, bounded)
		assert.Equal(t, actualEnd, end)
	})
}

func TestDerivePaymentStatus(t *testing.T) {
	total := decimal.NewFromInt(49350)

	tests := []struct {
		name     string
		received decimal.Decimal
		want     domain.PaymentStatus
	}{
		{name: "nothing received", received: decimal.Zero, want: domain.PaymentPending},
		{name: "partially received", received: decimal.NewFromInt(10000), want: domain.PaymentPartial},
		{name: "fully received", received: total, want: domain.PaymentPaid},
		{name: "overpaid still paid", received: total.Add(decimal.NewFromInt(1)), want: domain.PaymentPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DerivePaymentStatus(total, tt.received))
		})
	}
}
