package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Avellano30/spa-management-client/internal/validate"
)

// RequestPasswordReset asks the server to email a reset link.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/password-reset", body, nil, "Request failed")
}

// VerifyResetToken checks that a reset token is still valid.
func (c *Client) VerifyResetToken(ctx context.Context, token string) error {
	path := "/password-reset/verify/" + url.PathEscape(token)
	return c.do(ctx, http.MethodGet, path, nil, nil, "Token verification failed")
}

// ResetPassword sets a new password via a reset token. The password must
// pass the same strength rules as registration.
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	if !validate.PasswordChecks(password).Valid {
		return fmt.Errorf("password must be 8+ chars with uppercase, lowercase, and a special character")
	}
	body := map[string]string{"password": password}
	path := "/password-reset/" + url.PathEscape(token)
	return c.do(ctx, http.MethodPost, path, body, nil, "Password reset failed")
}
