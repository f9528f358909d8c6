// Package session is the single source of truth for the signed-in
// identity. Call sites receive it explicitly instead of reading shared
// storage themselves.
package session

import (
	"fmt"
	"log"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Avellano30/spa-management-client/internal/store"
)

type Session struct {
	store *store.Store
	token string
	lg    *log.Logger
}

// New restores any persisted session from the local store.
func New(st *store.Store, lg *log.Logger) (*Session, error) {
	token, err := st.SessionToken()
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	return &Session{store: st, token: token, lg: lg}, nil
}

func (s *Session) Authenticated() bool {
	return s.token != ""
}

func (s *Session) Token() string {
	return s.token
}

// ClientID extracts the userId claim from the session token. The token is
// decoded without signature verification; the server is the authority on
// token validity, the client only needs the identity embedded in it.
func (s *Session) ClientID() (string, error) {
	if s.token == "" {
		return "", fmt.Errorf("no session token found")
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.token, claims); err != nil {
		return "", fmt.Errorf("decode session token: %w", err)
	}

	id, ok := claims["userId"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("session token has no userId claim")
	}
	return id, nil
}

// SignIn stores a fresh token, persisting it across runs.
func (s *Session) SignIn(token string) error {
	if err := s.store.SetSessionToken(token); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	s.token = token
	return nil
}

// Logout invalidates the session and withdraws the terms acknowledgment,
// matching sign-out behavior of the web client.
func (s *Session) Logout() error {
	s.token = ""
	if err := s.store.ClearSessionToken(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if err := s.store.SetTermsAccepted(false); err != nil {
		return fmt.Errorf("clear terms acknowledgment: %w", err)
	}
	s.lg.Println("Signed out.")
	return nil
}
