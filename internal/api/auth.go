package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Avellano30/spa-management-client/internal/validate"
)

// AuthSession is the server's response to a successful sign-in/sign-up.
type AuthSession struct {
	Token     string `json:"token"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// SignUpParams carries the registration form. PhoneNumber may arrive
// formatted; only its digits are sent to the server.
type SignUpParams struct {
	FirstName   string
	LastName    string
	UserName    string
	Email       string
	Password    string
	PhoneNumber string
}

// Validate applies the client-side registration rules before any network
// round-trip is spent.
func (p SignUpParams) Validate() error {
	if !validate.Email(p.Email) {
		return fmt.Errorf("please input a valid email")
	}
	if p.UserName == "" || p.Email == "" || p.Password == "" {
		return fmt.Errorf("please input all required fields")
	}
	if !validate.PasswordChecks(p.Password).Valid {
		return fmt.Errorf("password must be 8+ chars with uppercase, lowercase, and a special character")
	}
	if len(validate.DigitsOnly(p.PhoneNumber)) < 11 {
		return fmt.Errorf("please enter a valid mobile number (11 digits)")
	}
	return nil
}

// SignIn exchanges credentials for a session token.
func (c *Client) SignIn(ctx context.Context, email, password string) (*AuthSession, error) {
	body := map[string]string{"email": email, "password": password}

	var session AuthSession
	if err := c.doAuth(ctx, "/client/sign-in", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SignUp registers a new client account and returns its session.
func (c *Client) SignUp(ctx context.Context, params SignUpParams) (*AuthSession, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	body := map[string]string{
		"firstname": params.FirstName,
		"lastname":  params.LastName,
		"username":  params.UserName,
		"email":     params.Email,
		"password":  params.Password,
		"phone":     validate.DigitsOnly(params.PhoneNumber),
	}

	var session AuthSession
	if err := c.doAuth(ctx, "/client/sign-up", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// doAuth is do plus the static API key the auth endpoints require.
func (c *Client) doAuth(ctx context.Context, path string, body, out interface{}) error {
	req, err := c.newJSONRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	if c.APIKey != "" {
		req.Header.Set("Authorization", c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiError(resp, "Authentication failed")
	}
	return decodeJSON(resp, out)
}
