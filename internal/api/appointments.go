package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/Avellano30/spa-management-client/internal/models"
)

type paymentWire struct {
	ID             string  `json:"_id"`
	AppointmentID  string  `json:"appointmentId"`
	Amount         float64 `json:"amount"`
	Method         string  `json:"method"`
	Type           string  `json:"type"`
	Status         string  `json:"status"`
	TransactionRef string  `json:"transactionRef"`
	Remarks        string  `json:"remarks"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

type appointmentWire struct {
	ID       string `json:"_id"`
	ClientID string `json:"clientId"`

	// Populated service object, plain id string, or null when the
	// service has been deleted server-side.
	ServiceID json.RawMessage `json:"serviceId"`

	Date        string        `json:"date"`
	StartTime   string        `json:"startTime"`
	EndTime     string        `json:"endTime"`
	Status      string        `json:"status"`
	Notes       string        `json:"notes"`
	IsTemporary bool          `json:"isTemporary"`
	Payments    []paymentWire `json:"payments"`
}

func (w appointmentWire) toModel() (models.Appointment, error) {
	status, err := models.ParseAppointmentStatus(w.Status)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("appointment %s: %w", w.ID, err)
	}

	appt := models.Appointment{
		ID:          w.ID,
		ClientID:    w.ClientID,
		Date:        parseTS(w.Date),
		StartTime:   w.StartTime,
		EndTime:     w.EndTime,
		Status:      status,
		Notes:       w.Notes,
		IsTemporary: w.IsTemporary,
	}

	// Degraded case: service deleted or not populated leaves Service nil.
	var svcWire serviceWire
	if len(w.ServiceID) > 0 && json.Unmarshal(w.ServiceID, &svcWire) == nil && svcWire.ID != "" {
		if svc, err := svcWire.toModel(); err == nil {
			appt.Service = &svc
		}
	}

	appt.Payments = make([]models.Payment, 0, len(w.Payments))
	for _, p := range w.Payments {
		typ, err := models.ParsePaymentType(p.Type)
		if err != nil {
			return models.Appointment{}, fmt.Errorf("appointment %s: %w", w.ID, err)
		}
		st, err := models.ParsePaymentStatus(p.Status)
		if err != nil {
			return models.Appointment{}, fmt.Errorf("appointment %s: %w", w.ID, err)
		}
		appt.Payments = append(appt.Payments, models.Payment{
			ID:             p.ID,
			AppointmentID:  p.AppointmentID,
			Amount:         p.Amount,
			Method:         p.Method,
			Type:           typ,
			Status:         st,
			TransactionRef: p.TransactionRef,
			Remarks:        p.Remarks,
			CreatedAt:      parseTS(p.CreatedAt),
			UpdatedAt:      parseTS(p.UpdatedAt),
		})
	}

	// Policy depends on the last payment being the most recent, so the
	// chronological contract is enforced here rather than assumed.
	sort.SliceStable(appt.Payments, func(i, j int) bool {
		return appt.Payments[i].CreatedAt.Before(appt.Payments[j].CreatedAt)
	})

	return appt, nil
}

// NewAppointment is the create-appointment request body.
type NewAppointment struct {
	ClientID    string `json:"clientId"`
	ServiceID   string `json:"serviceId"`
	Date        string `json:"date"` // YYYY-MM-DD
	StartTime   string `json:"startTime"`
	Notes       string `json:"notes,omitempty"`
	IsTemporary bool   `json:"isTemporary,omitempty"`
}

// ClientAppointments fetches every appointment for one client, payments
// sorted chronologically.
func (c *Client) ClientAppointments(ctx context.Context, clientID string) ([]models.Appointment, error) {
	var wire struct {
		Appointments []appointmentWire `json:"appointments"`
	}
	path := "/appointment/client/" + url.PathEscape(clientID)
	if err := c.do(ctx, http.MethodGet, path, nil, &wire, "Failed to fetch client appointments"); err != nil {
		return nil, err
	}

	out := make([]models.Appointment, 0, len(wire.Appointments))
	for _, w := range wire.Appointments {
		appt, err := w.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, appt)
	}
	return out, nil
}

// CreateAppointment books a new (possibly temporary) appointment and
// returns the created record with its assigned id.
func (c *Client) CreateAppointment(ctx context.Context, req NewAppointment) (*models.Appointment, error) {
	var wire appointmentWire
	if err := c.do(ctx, http.MethodPost, "/appointment", req, &wire, "Failed to create appointment"); err != nil {
		return nil, err
	}
	appt, err := wire.toModel()
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// DeleteAppointment removes an appointment, used for provisional cleanup.
func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	path := "/appointment/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, "Failed to delete temp appointment")
}

// ConfirmAppointment clears the temporary flag, promoting a provisional
// booking to a real one.
func (c *Client) ConfirmAppointment(ctx context.Context, id string) error {
	body := map[string]bool{"isTemporary": false}
	path := "/appointment/" + url.PathEscape(id)
	return c.do(ctx, http.MethodPatch, path, body, nil, "Failed to confirm appointment")
}

// RescheduleAppointment moves an appointment to a new date and start time.
func (c *Client) RescheduleAppointment(ctx context.Context, id string, date time.Time, startTime, notes string) (*models.Appointment, error) {
	body := map[string]string{
		"date":      date.Format("2006-01-02"),
		"startTime": startTime,
	}
	if notes != "" {
		body["notes"] = notes
	}

	var wire appointmentWire
	path := "/appointment/" + url.PathEscape(id) + "/reschedule"
	if err := c.do(ctx, http.MethodPatch, path, body, &wire, "Failed to reschedule appointment"); err != nil {
		return nil, err
	}
	appt, err := wire.toModel()
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// CancelAppointment cancels an appointment.
func (c *Client) CancelAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	var wire appointmentWire
	path := "/appointment/" + url.PathEscape(id) + "/cancel"
	if err := c.do(ctx, http.MethodPatch, path, nil, &wire, "Failed to cancel appointment"); err != nil {
		return nil, err
	}
	appt, err := wire.toModel()
	if err != nil {
		return nil, err
	}
	return &appt, nil
}
