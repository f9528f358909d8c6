package models

import "fmt"

type ServiceStatus string

const (
	ServiceAvailable   ServiceStatus = "available"
	ServiceUnavailable ServiceStatus = "unavailable"
)

// ParseServiceStatus validates a status string coming off the wire.
func ParseServiceStatus(s string) (ServiceStatus, error) {
	switch ServiceStatus(s) {
	case ServiceAvailable, ServiceUnavailable:
		return ServiceStatus(s), nil
	default:
		return "", fmt.Errorf("unknown service status %q", s)
	}
}

// Service is a bookable spa treatment. Fetched from the API, never
// mutated locally.
type Service struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Duration    int // minutes
	Category    string
	ImageURL    string
	Status      ServiceStatus
}

func (s Service) Available() bool {
	return s.Status == ServiceAvailable
}
