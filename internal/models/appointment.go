package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type AppointmentStatus string

const (
	StatusPending     AppointmentStatus = "Pending"
	StatusApproved    AppointmentStatus = "Approved"
	StatusCancelled   AppointmentStatus = "Cancelled"
	StatusCompleted   AppointmentStatus = "Completed"
	StatusRescheduled AppointmentStatus = "Rescheduled"
)

func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusApproved, StatusCancelled, StatusCompleted, StatusRescheduled:
		return AppointmentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
}

// Terminal reports whether no further transitions are possible.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Appointment is a booked (or provisional) visit. Service may be nil when
// the referenced service has been deleted server-side; callers must treat
// that as a degraded-display case.
type Appointment struct {
	ID          string
	ClientID    string
	Service     *Service
	Date        time.Time // date component only
	StartTime   string    // "HH:MM" or "HH:MM:SS"
	EndTime     string
	Status      AppointmentStatus
	Notes       string
	IsTemporary bool

	// Chronological by creation; policy derives the next legal payment
	// action from the last element.
	Payments []Payment
}

// StartsAt combines Date and StartTime into a single instant.
func (a *Appointment) StartsAt() (time.Time, error) {
	hour, minute, err := parseClock(a.StartTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("appointment %s: %w", a.ID, err)
	}
	y, m, d := a.Date.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, a.Date.Location()), nil
}

func parseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("invalid start time %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid start time %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid start time %q", s)
	}
	return hour, minute, nil
}
