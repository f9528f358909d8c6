package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Avellano30/spa-management-client/internal/models"
)

// CreateOnlinePayment opens a hosted payment session for an appointment
// and returns the URL the browser must be redirected to.
func (c *Client) CreateOnlinePayment(ctx context.Context, appointmentID string, typ models.PaymentType) (string, error) {
	body := map[string]string{
		"appointmentId": appointmentID,
		"type":          string(typ),
	}

	var wire struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/payment/online", body, &wire, "Failed to create online payment session"); err != nil {
		return "", err
	}
	if wire.URL == "" {
		return "", fmt.Errorf("payment session response missing redirect url")
	}
	return wire.URL, nil
}

// CreateCashPayment records a cash payment against an appointment.
func (c *Client) CreateCashPayment(ctx context.Context, appointmentID string, typ models.PaymentType, amount float64, remarks string) (*models.Payment, error) {
	body := map[string]interface{}{
		"appointmentId": appointmentID,
		"type":          string(typ),
		"amount":        amount,
	}
	if remarks != "" {
		body["remarks"] = remarks
	}

	var wire paymentWire
	if err := c.do(ctx, http.MethodPost, "/payment/cash", body, &wire, "Failed to create cash payment"); err != nil {
		return nil, err
	}

	paymentType, err := models.ParsePaymentType(wire.Type)
	if err != nil {
		return nil, err
	}
	status, err := models.ParsePaymentStatus(wire.Status)
	if err != nil {
		return nil, err
	}
	return &models.Payment{
		ID:             wire.ID,
		AppointmentID:  wire.AppointmentID,
		Amount:         wire.Amount,
		Method:         wire.Method,
		Type:           paymentType,
		Status:         status,
		TransactionRef: wire.TransactionRef,
		Remarks:        wire.Remarks,
		CreatedAt:      parseTS(wire.CreatedAt),
		UpdatedAt:      parseTS(wire.UpdatedAt),
	}, nil
}
