package service

import (
	"time"

	"garage/config"
	"garage/internal/domains/booking/model"
	"garage/shared"
)

// CancellationPolicy is the tiered fee schedule. Rates are fractions of the
// booking's total value; tier boundaries are hours before the appointment
// start.
type CancellationPolicy struct {
	GraceHours       int
	MidTierHours     int
	MidTierRate      float64
	LateRate         float64
	SurchargeRate    float64
	MonthlyThreshold int
}

func PolicyFromConfig(cfg *config.Config) CancellationPolicy {
	return CancellationPolicy{
		GraceHours:       cfg.Scheduling.Cancellation.GraceHours,
		MidTierHours:     cfg.Scheduling.Cancellation.MidTierHours,
		MidTierRate:      cfg.Scheduling.Cancellation.MidTierRate,
		LateRate:         cfg.Scheduling.Cancellation.LateRate,
		SurchargeRate:    cfg.Scheduling.Cancellation.SurchargeRate,
		MonthlyThreshold: cfg.Scheduling.Cancellation.MonthlyThreshold,
	}
}

// ComputeCancellationFee returns the fee for cancelling the booking at the
// given instant. monthlyCancellations is the customer's cancellation count
// for the current calendar month including this one.
//
// Completed work is charged in full regardless of timing. Otherwise the fee
// follows the notice tiers, plus a repeat-cancellation surcharge for every
// cancellation past the monthly threshold. The result is clamped to
// [0, totalValue] and rounded to cents.
func (p CancellationPolicy) ComputeCancellationFee(booking model.Booking, now time.Time, monthlyCancellations int) float64 {
	if booking.Status == model.StatusCompleted {
		return shared.RoundMoney(booking.TotalValue)
	}

	fee := p.baseFee(booking, now)

	if monthlyCancellations > p.MonthlyThreshold {
		excess := monthlyCancellations - p.MonthlyThreshold
		fee += p.SurchargeRate * float64(excess) * booking.TotalValue
	}

	if fee < 0 {
		fee = 0
	}

	if fee > booking.TotalValue {
		fee = booking.TotalValue
	}

	return shared.RoundMoney(fee)
}

func (p CancellationPolicy) baseFee(booking model.Booking, now time.Time) float64 {
	hours := booking.StartTime.Sub(now).Hours()

	switch {
	case hours >= float64(p.GraceHours):
		return 0
	case hours >= float64(p.MidTierHours):
		return p.MidTierRate * booking.TotalValue
	default:
		return p.LateRate * booking.TotalValue
	}
}

// StartOfMonth returns midnight on the first day of t's calendar month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
