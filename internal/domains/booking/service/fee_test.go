package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"garage/internal/domains/booking/model"
	"garage/internal/domains/booking/service"
)

func defaultPolicy() service.CancellationPolicy {
	return service.CancellationPolicy{
		GraceHours:       24,
		MidTierHours:     6,
		MidTierRate:      0.20,
		LateRate:         0.50,
		SurchargeRate:    0.10,
		MonthlyThreshold: 3,
	}
}

func bookingAt(start time.Time, total float64, status string) model.Booking {
	return model.Booking{
		ID:         "booking-1",
		CustomerID: "customer-1",
		StartTime:  start,
		TotalValue: total,
		Status:     status,
	}
}

func TestComputeCancellationFee(t *testing.T) {
	now := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	policy := defaultPolicy()

	tests := []struct {
		name          string
		hoursBefore   float64
		status        string
		cancellations int
		want          float64
	}{
		{
			name:          "free inside grace window",
			hoursBefore:   30,
			status:        model.StatusScheduled,
			cancellations: 1,
			want:          0,
		},
		{
			name:          "exactly at grace boundary is free",
			hoursBefore:   24,
			status:        model.StatusScheduled,
			cancellations: 1,
			want:          0,
		},
		{
			name:          "mid tier charges twenty percent",
			hoursBefore:   10,
			status:        model.StatusScheduled,
			cancellations: 1,
			want:          20,
		},
		{
			name:          "exactly at mid boundary stays mid tier",
			hoursBefore:   6,
			status:        model.StatusScheduled,
			cancellations: 1,
			want:          20,
		},
		{
			name:          "late cancellation charges half",
			hoursBefore:   3,
			status:        model.StatusScheduled,
			cancellations: 1,
			want:          50,
		},
		{
			name:          "appointment already started charges half",
			hoursBefore:   -1,
			status:        model.StatusInProgress,
			cancellations: 1,
			want:          50,
		},
		{
			name:          "fourth cancellation adds surcharge over a free tier",
			hoursBefore:   30,
			status:        model.StatusScheduled,
			cancellations: 4,
			want:          10,
		},
		{
			name:          "surcharge stacks per excess cancellation",
			hoursBefore:   10,
			status:        model.StatusScheduled,
			cancellations: 5,
			want:          40,
		},
		{
			name:          "fee never exceeds the booking total",
			hoursBefore:   3,
			status:        model.StatusScheduled,
			cancellations: 10,
			want:          100,
		},
		{
			name:          "completed work is charged in full regardless of notice",
			hoursBefore:   100,
			status:        model.StatusCompleted,
			cancellations: 0,
			want:          100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := now.Add(time.Duration(tt.hoursBefore * float64(time.Hour)))
			booking := bookingAt(start, 100, tt.status)

			got := policy.ComputeCancellationFee(booking, now, tt.cancellations)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeCancellationFeeBounds(t *testing.T) {
	now := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	policy := defaultPolicy()

	hours := []float64{-5, 0, 3, 6, 10, 24, 72}
	counts := []int{0, 1, 3, 4, 8, 20}
	totals := []float64{0, 19.99, 100, 2500.50}

	for _, h := range hours {
		for _, count := range counts {
			for _, total := range totals {
				start := now.Add(time.Duration(h * float64(time.Hour)))
				booking := bookingAt(start, total, model.StatusScheduled)

				fee := policy.ComputeCancellationFee(booking, now, count)

				assert.GreaterOrEqual(t, fee, 0.0)
				assert.LessOrEqual(t, fee, total)
			}
		}
	}
}

func TestStartOfMonth(t *testing.T) {
	at := time.Date(2026, 9, 14, 17, 30, 12, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), service.StartOfMonth(at))
}
