// Package policy derives the legal payment actions for an appointment
// from its status, price and payment history. Pure functions, no side
// effects; the server remains the enforcement point.
package policy

import (
	"time"

	"github.com/Avellano30/spa-management-client/internal/models"
)

// DownpaymentRate is the fixed fraction of the service price required to
// confirm a booking.
const DownpaymentRate = 0.30

// RescheduleNotice is the minimum lead time before the appointment start
// for a reschedule to be allowed. The comparison is strict: exactly 24h
// out is too late.
const RescheduleNotice = 24 * time.Hour

// NextPaymentType returns the next payment type to offer given the
// chronological payment history, and false when no further payment is
// legal.
//
// An empty history yields Balance. That mirrors the observed behavior of
// the production web client even though Pending appointments separately
// offer a Downpayment; see DESIGN.md before changing it. A most-recent
// payment of type Full or Balance closes the history regardless of its
// status, so a Pending or Failed attempt blocks retries.
func NextPaymentType(payments []models.Payment) (models.PaymentType, bool) {
	if len(payments) == 0 {
		return models.PaymentBalance, true
	}

	last := payments[len(payments)-1]
	switch {
	case last.Type == models.PaymentDownpayment && last.Status == models.PaymentCompleted:
		return models.PaymentBalance, true
	case last.Type == models.PaymentFull || last.Type == models.PaymentBalance:
		return "", false
	default:
		// One outstanding payment attempt at a time.
		return "", false
	}
}

// TotalPaid sums completed, non-refund payments.
func TotalPaid(payments []models.Payment) float64 {
	var sum float64
	for _, p := range payments {
		if p.Status == models.PaymentCompleted && p.Type != models.PaymentRefund {
			sum += p.Amount
		}
	}
	return sum
}

// Remaining is the outstanding balance, floored at zero.
func Remaining(price float64, payments []models.Payment) float64 {
	remaining := price - TotalPaid(payments)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// DownpaymentAmount is the fixed 30% confirmation payment.
func DownpaymentAmount(price float64) float64 {
	return price * DownpaymentRate
}

// PayOffer is a payment the client may make right now.
type PayOffer struct {
	Type   models.PaymentType
	Amount float64
}

// Actions is the set of currently legal actions for one appointment. The
// three are independent; all may be available at once.
type Actions struct {
	Pay        *PayOffer
	Reschedule bool
	Cancel     bool
}

// ActionsFor computes action eligibility for an appointment as of now.
// Appointments whose service reference is gone get no pay offer (there is
// no price to compute against), but reschedule/cancel are unaffected.
func ActionsFor(appt *models.Appointment, now time.Time) Actions {
	var actions Actions

	if appt.Service != nil {
		price := appt.Service.Price
		switch appt.Status {
		case models.StatusPending:
			actions.Pay = &PayOffer{
				Type:   models.PaymentDownpayment,
				Amount: DownpaymentAmount(price),
			}
		case models.StatusApproved:
			remaining := Remaining(price, appt.Payments)
			if next, ok := NextPaymentType(appt.Payments); ok && remaining > 0 {
				actions.Pay = &PayOffer{Type: next, Amount: remaining}
			}
		}
	}

	if appt.Status == models.StatusApproved || appt.Status == models.StatusRescheduled {
		if start, err := appt.StartsAt(); err == nil {
			actions.Reschedule = start.Sub(now) > RescheduleNotice
		}
	}

	actions.Cancel = !appt.Status.Terminal()

	return actions
}
