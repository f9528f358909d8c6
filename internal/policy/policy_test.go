package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Avellano30/spa-management-client/internal/models"
)

func payment(typ models.PaymentType, status models.PaymentStatus, amount float64) models.Payment {
	return models.Payment{Type: typ, Status: status, Amount: amount}
}

func TestNextPaymentType(t *testing.T) {
	// Empty history offers Balance, matching the production client.
	next, ok := NextPaymentType(nil)
	assert.True(t, ok)
	assert.Equal(t, models.PaymentBalance, next)

	next, ok = NextPaymentType([]models.Payment{
		payment(models.PaymentDownpayment, models.PaymentCompleted, 300),
	})
	assert.True(t, ok)
	assert.Equal(t, models.PaymentBalance, next)

	// Full or Balance as the most recent payment closes the history even
	// when it never completed.
	for _, typ := range []models.PaymentType{models.PaymentFull, models.PaymentBalance} {
		for _, status := range []models.PaymentStatus{models.PaymentCompleted, models.PaymentPending, models.PaymentFailed} {
			_, ok := NextPaymentType([]models.Payment{payment(typ, status, 100)})
			assert.False(t, ok, "%s/%s", typ, status)
		}
	}

	// An outstanding downpayment attempt blocks further offers.
	_, ok = NextPaymentType([]models.Payment{
		payment(models.PaymentDownpayment, models.PaymentPending, 300),
	})
	assert.False(t, ok)

	// Only the most recent payment matters.
	next, ok = NextPaymentType([]models.Payment{
		payment(models.PaymentDownpayment, models.PaymentFailed, 300),
		payment(models.PaymentDownpayment, models.PaymentCompleted, 300),
	})
	assert.True(t, ok)
	assert.Equal(t, models.PaymentBalance, next)
}

func TestRemaining(t *testing.T) {
	payments := []models.Payment{
		payment(models.PaymentDownpayment, models.PaymentCompleted, 300),
	}
	assert.Equal(t, 700.0, Remaining(1000, payments))

	// Failed and pending payments don't count.
	payments = append(payments, payment(models.PaymentBalance, models.PaymentFailed, 700))
	assert.Equal(t, 700.0, Remaining(1000, payments))

	// Refunds don't reduce the outstanding balance.
	payments = append(payments, payment(models.PaymentRefund, models.PaymentCompleted, 300))
	assert.Equal(t, 700.0, Remaining(1000, payments))

	// Floored at zero.
	assert.Equal(t, 0.0, Remaining(200, []models.Payment{
		payment(models.PaymentFull, models.PaymentCompleted, 500),
	}))
}

func TestDownpaymentAmount(t *testing.T) {
	assert.InDelta(t, 300, DownpaymentAmount(1000), 1e-9)
}

func appointmentAt(status models.AppointmentStatus, start time.Time, price float64, payments ...models.Payment) *models.Appointment {
	y, m, d := start.Date()
	return &models.Appointment{
		ID:        "appt-1",
		Service:   &models.Service{ID: "svc-1", Price: price, Status: models.ServiceAvailable},
		Date:      time.Date(y, m, d, 0, 0, 0, 0, start.Location()),
		StartTime: start.Format("15:04"),
		Status:    status,
		Payments:  payments,
	}
}

func TestActionsForPending(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	appt := appointmentAt(models.StatusPending, now.Add(48*time.Hour), 1000)

	actions := ActionsFor(appt, now)
	require.NotNil(t, actions.Pay)
	assert.Equal(t, models.PaymentDownpayment, actions.Pay.Type)
	assert.InDelta(t, 300, actions.Pay.Amount, 1e-9)
	assert.False(t, actions.Reschedule, "pending appointments are not reschedulable")
	assert.True(t, actions.Cancel)
}

func TestActionsForApprovedWithBalance(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	appt := appointmentAt(models.StatusApproved, now.Add(48*time.Hour), 1000,
		payment(models.PaymentDownpayment, models.PaymentCompleted, 300))

	actions := ActionsFor(appt, now)
	require.NotNil(t, actions.Pay)
	assert.Equal(t, models.PaymentBalance, actions.Pay.Type)
	assert.InDelta(t, 700, actions.Pay.Amount, 1e-9)
	// All three actions at once is legal.
	assert.True(t, actions.Reschedule)
	assert.True(t, actions.Cancel)
}

func TestActionsForFullyPaid(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	appt := appointmentAt(models.StatusApproved, now.Add(48*time.Hour), 1000,
		payment(models.PaymentFull, models.PaymentCompleted, 1000))

	actions := ActionsFor(appt, now)
	assert.Nil(t, actions.Pay)
	assert.True(t, actions.Reschedule)
	assert.True(t, actions.Cancel)
}

func TestActionsForRescheduleBoundary(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	// Exactly 24h out is NOT reschedulable; one second more is.
	appt := appointmentAt(models.StatusApproved, now.Add(24*time.Hour), 1000)
	assert.False(t, ActionsFor(appt, now).Reschedule)
	assert.True(t, ActionsFor(appt, now.Add(-time.Second)).Reschedule)

	rescheduled := appointmentAt(models.StatusRescheduled, now.Add(24*time.Hour), 1000)
	assert.True(t, ActionsFor(rescheduled, now.Add(-time.Second)).Reschedule)
}

func TestActionsForTerminalStatuses(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	for _, status := range []models.AppointmentStatus{models.StatusCancelled, models.StatusCompleted} {
		actions := ActionsFor(appointmentAt(status, now.Add(48*time.Hour), 1000), now)
		assert.Nil(t, actions.Pay, "%s", status)
		assert.False(t, actions.Reschedule, "%s", status)
		assert.False(t, actions.Cancel, "%s", status)
	}
}

func TestActionsForDeletedService(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	appt := appointmentAt(models.StatusPending, now.Add(48*time.Hour), 1000)
	appt.Service = nil

	actions := ActionsFor(appt, now)
	assert.Nil(t, actions.Pay, "no price to offer against")
	assert.True(t, actions.Cancel)
}
