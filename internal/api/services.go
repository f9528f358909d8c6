package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Avellano30/spa-management-client/internal/models"
)

type serviceWire struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Status      string  `json:"status"`
}

func (w serviceWire) toModel() (models.Service, error) {
	status, err := models.ParseServiceStatus(w.Status)
	if err != nil {
		return models.Service{}, fmt.Errorf("service %s: %w", w.ID, err)
	}
	return models.Service{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Price:       w.Price,
		Duration:    w.Duration,
		Category:    w.Category,
		ImageURL:    w.ImageURL,
		Status:      status,
	}, nil
}

// Services fetches the full service catalogue.
func (c *Client) Services(ctx context.Context) ([]models.Service, error) {
	var wire []serviceWire
	if err := c.do(ctx, http.MethodGet, "/services", nil, &wire, "Failed to fetch services"); err != nil {
		return nil, err
	}

	out := make([]models.Service, 0, len(wire))
	for _, w := range wire {
		svc, err := w.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, svc)
	}
	return out, nil
}

// ServiceByID resolves one service from the catalogue, nil when absent.
func (c *Client) ServiceByID(ctx context.Context, id string) (*models.Service, error) {
	services, err := c.Services(ctx)
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].ID == id {
			return &services[i], nil
		}
	}
	return nil, nil
}
