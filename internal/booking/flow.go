// Package booking drives the multi-step appointment booking wizard:
// step navigation, the provisional-appointment lifecycle, and final
// confirmation or hand-off to the payment provider.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/Avellano30/spa-management-client/internal/api"
	"github.com/Avellano30/spa-management-client/internal/models"
)

type Step int

const (
	StepSchedule Step = iota // select date & time
	StepDetails              // notes & payment
	StepReview               // review & confirm
	StepDone
)

type Channel string

const (
	ChannelCash   Channel = "Cash"
	ChannelOnline Channel = "Online"
)

var (
	ErrTermsNotAccepted = errors.New("you must agree to the terms & conditions before booking")
	ErrMissingDateTime  = errors.New("please select a date and time before continuing")
	ErrAtReview         = errors.New("the review step is completed via Submit")
	ErrNotAtReview      = errors.New("submission is only possible from the review step")
)

// SignInRequiredError reports that the flow needs an authenticated
// client. Redirect is the sign-in path carrying a return URL back into
// this booking.
type SignInRequiredError struct {
	Redirect string
}

func (e *SignInRequiredError) Error() string {
	return "sign-in required"
}

// Appointments is the slice of the data-access layer the flow needs.
type Appointments interface {
	CreateAppointment(ctx context.Context, req api.NewAppointment) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
	ConfirmAppointment(ctx context.Context, id string) error
}

// Payments opens hosted payment sessions.
type Payments interface {
	CreateOnlinePayment(ctx context.Context, appointmentID string, typ models.PaymentType) (string, error)
}

// Identity is the injected auth context.
type Identity interface {
	Authenticated() bool
	ClientID() (string, error)
}

// Terms exposes the persisted terms-and-conditions acknowledgment.
type Terms interface {
	TermsAccepted() bool
}

type Deps struct {
	Appointments Appointments
	Payments     Payments
	Identity     Identity
	Terms        Terms
	Logger       *log.Logger

	// SignInPath is where unauthenticated users are sent, e.g. "/sign-in".
	SignInPath string
}

// Flow is one booking wizard session for one service. Not safe for
// concurrent use; a flow belongs to a single user interaction.
type Flow struct {
	deps    Deps
	id      uuid.UUID
	service models.Service

	step      Step
	date      time.Time
	startTime string
	notes     string
	channel   Channel
	mode      models.PaymentType

	// Provisional appointment created on the details -> review
	// transition. At most one is outstanding per flow.
	apptID string
}

// NewFlow starts a wizard for the given service. Defaults match the web
// client: pay on site, full payment when switching to online.
func NewFlow(service models.Service, deps Deps) *Flow {
	return &Flow{
		deps:    deps,
		id:      uuid.New(),
		service: service,
		step:    StepSchedule,
		channel: ChannelCash,
		mode:    models.PaymentFull,
	}
}

// ID identifies this wizard session. Callers applying asynchronous
// results must check the id is still the one they started with; a stale
// result for a superseded flow is dropped, not applied.
func (f *Flow) ID() uuid.UUID { return f.id }

func (f *Flow) Step() Step { return f.step }

// AppointmentID returns the provisional appointment id, empty until the
// details -> review transition has created one.
func (f *Flow) AppointmentID() string { return f.apptID }

func (f *Flow) SetSchedule(date time.Time, startTime string) {
	f.date = date
	f.startTime = startTime
}

func (f *Flow) SetNotes(notes string) { f.notes = notes }

func (f *Flow) SetChannel(ch Channel) error {
	if ch != ChannelCash && ch != ChannelOnline {
		return fmt.Errorf("unknown payment channel %q", ch)
	}
	f.channel = ch
	return nil
}

// SetPaymentMode picks between full payment and the 30% downpayment.
// Only meaningful when the channel is online.
func (f *Flow) SetPaymentMode(mode models.PaymentType) error {
	if mode != models.PaymentFull && mode != models.PaymentDownpayment {
		return fmt.Errorf("payment mode must be Full or Downpayment, got %q", mode)
	}
	f.mode = mode
	return nil
}

// Next advances the wizard one step. The terms acknowledgment is a hard
// precondition on every forward transition. The details -> review
// transition creates the provisional appointment the first time through;
// a flow that already holds one never recreates it.
func (f *Flow) Next(ctx context.Context) error {
	if !f.deps.Terms.TermsAccepted() {
		return ErrTermsNotAccepted
	}

	switch f.step {
	case StepSchedule:
		if f.date.IsZero() || f.startTime == "" {
			return ErrMissingDateTime
		}
		f.step = StepDetails
		return nil

	case StepDetails:
		if f.apptID == "" {
			appt, err := f.createAppointment(ctx, true)
			if err != nil {
				// Stay on this step; the user retries or signs in.
				return err
			}
			f.apptID = appt.ID
			f.deps.Logger.Printf("Flow %s: created temporary appointment %s", f.id, f.apptID)
		}
		f.step = StepReview
		return nil

	default:
		return ErrAtReview
	}
}

// Back moves the wizard one step backwards. Leaving the review step
// deletes the provisional appointment best-effort: a failed delete is
// logged and navigation proceeds, keeping the id so nothing new is
// created until the stale record is gone.
func (f *Flow) Back(ctx context.Context) {
	if f.step == StepReview && f.apptID != "" {
		if err := f.deps.Appointments.DeleteAppointment(ctx, f.apptID); err != nil {
			f.deps.Logger.Printf("⚠️  Flow %s: failed to delete temp appointment %s: %v", f.id, f.apptID, err)
		} else {
			f.apptID = ""
		}
	}
	if f.step > StepSchedule {
		f.step--
	}
}

// Result is the outcome of a successful Submit.
type Result struct {
	AppointmentID string

	// RedirectURL is set for online payments: the flow suspends and the
	// browser hands control to the payment provider.
	RedirectURL string

	// Completed is set for cash bookings; the appointment is confirmed
	// and the wizard is done.
	Completed bool
}

// Submit finalises the booking from the review step. All entered state
// is preserved on failure so the user can retry.
func (f *Flow) Submit(ctx context.Context) (*Result, error) {
	if f.step != StepReview {
		return nil, ErrNotAtReview
	}
	if f.date.IsZero() || f.startTime == "" {
		return nil, ErrMissingDateTime
	}

	// Normally the provisional appointment already exists; create a
	// final one only when the flow reached review without it.
	apptID := f.apptID
	if apptID == "" {
		appt, err := f.createAppointment(ctx, false)
		if err != nil {
			return nil, err
		}
		apptID = appt.ID
		f.apptID = apptID
	}

	if f.channel == ChannelOnline {
		payURL, err := f.deps.Payments.CreateOnlinePayment(ctx, apptID, f.mode)
		if err != nil {
			return nil, err
		}
		return &Result{AppointmentID: apptID, RedirectURL: payURL}, nil
	}

	if err := f.deps.Appointments.ConfirmAppointment(ctx, apptID); err != nil {
		return nil, err
	}
	f.step = StepDone
	f.deps.Logger.Printf("Flow %s: booking %s confirmed, pay on site", f.id, apptID)
	return &Result{AppointmentID: apptID, Completed: true}, nil
}

func (f *Flow) createAppointment(ctx context.Context, temporary bool) (*models.Appointment, error) {
	if !f.deps.Identity.Authenticated() {
		return nil, &SignInRequiredError{Redirect: f.signInRedirect()}
	}
	clientID, err := f.deps.Identity.ClientID()
	if err != nil {
		return nil, &SignInRequiredError{Redirect: f.signInRedirect()}
	}

	return f.deps.Appointments.CreateAppointment(ctx, api.NewAppointment{
		ClientID:    clientID,
		ServiceID:   f.service.ID,
		Date:        f.date.Format("2006-01-02"),
		StartTime:   f.startTime,
		Notes:       f.notes,
		IsTemporary: temporary,
	})
}

func (f *Flow) signInRedirect() string {
	returnTo := "/book-appointment?serviceId=" + f.service.ID
	return f.deps.SignInPath + "?redirect=" + url.QueryEscape(returnTo)
}
