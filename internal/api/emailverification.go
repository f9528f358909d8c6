package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ResendEmailVerification asks the server to resend the verification mail.
func (c *Client) ResendEmailVerification(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/resend-verification", body, nil, "Request failed")
}

// VerifyEmail confirms an account via its emailed token.
func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("token is required for verification")
	}
	path := "/verify-email/" + url.PathEscape(token)
	return c.do(ctx, http.MethodGet, path, nil, nil, "Token verification failed")
}
