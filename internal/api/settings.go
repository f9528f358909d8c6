package api

import (
	"context"
	"net/http"

	"github.com/Avellano30/spa-management-client/internal/models"
)

// HomepageSettings fetches the homepage content block. A 404 means the
// settings were never configured and is not an error; callers get nil.
func (c *Client) HomepageSettings(ctx context.Context) (*models.HomepageSettings, error) {
	var settings models.HomepageSettings
	err := c.do(ctx, http.MethodGet, "/homepage-settings", nil, &settings, "Failed to fetch homepage settings")
	if err != nil {
		if apiErr, ok := err.(*Error); ok && apiErr.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}
