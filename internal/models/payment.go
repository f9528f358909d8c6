package models

import (
	"fmt"
	"time"
)

type PaymentType string

const (
	PaymentDownpayment PaymentType = "Downpayment"
	PaymentBalance     PaymentType = "Balance"
	PaymentFull        PaymentType = "Full"
	PaymentRefund      PaymentType = "Refund"
)

func ParsePaymentType(s string) (PaymentType, error) {
	switch PaymentType(s) {
	case PaymentDownpayment, PaymentBalance, PaymentFull, PaymentRefund:
		return PaymentType(s), nil
	default:
		return "", fmt.Errorf("unknown payment type %q", s)
	}
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return PaymentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown payment status %q", s)
	}
}

// Payment is a single payment record on an appointment. Append-only from
// the client's view; the sequence on an appointment is chronological by
// creation, which the data-access layer enforces on fetch.
type Payment struct {
	ID             string
	AppointmentID  string
	Amount         float64
	Method         string
	Type           PaymentType
	Status         PaymentStatus
	TransactionRef string
	Remarks        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
