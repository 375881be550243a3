// Package gate implements the client-side guard that runs before any
// protected view renders. It consults the verification status endpoint and
// decides whether to proceed or where to redirect. The check re-runs on
// every navigation into a protected area; nothing is cached between calls.
package gate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"surveyhub/internal/models"
)

// State tracks where the guard is in its lifecycle.
type State string

const (
	StateChecking    State = "checking"
	StateAuthorized  State = "authorized"
	StateRedirecting State = "redirecting"
)

// Decision is the outcome of a gate check.
type Decision int

const (
	// Proceed renders the protected view.
	Proceed Decision = iota
	// RedirectLogin sends the client to the login page.
	RedirectLogin
	// RedirectKYC sends a surveyor without a verification record to the
	// KYC form.
	RedirectKYC
)

// Session exposes the client-held identity. Implementations typically wrap
// the browser session storage analog.
type Session interface {
	// UserID returns the cached user id, or "" when no session exists.
	UserID() string
	// Clear drops the cached identity.
	Clear()
}

// MemorySession is an in-process Session.
type MemorySession struct {
	id string
}

func NewMemorySession(userID string) *MemorySession {
	return &MemorySession{id: userID}
}

func (s *MemorySession) UserID() string { return s.id }
func (s *MemorySession) Clear()         { s.id = "" }

type statusResponse struct {
	HasKYC *bool       `json:"hasKYC"`
	Role   models.Role `json:"role"`
}

// Gate checks a session against the verification status endpoint.
type Gate struct {
	client  *http.Client
	baseURL string
	session Session

	state State
}

// New creates a Gate. A nil client falls back to http.DefaultClient.
func New(client *http.Client, baseURL string, session Session) *Gate {
	if client == nil {
		client = http.DefaultClient
	}
	return &Gate{
		client:  client,
		baseURL: baseURL,
		session: session,
		state:   StateChecking,
	}
}

// State returns the gate's current lifecycle state.
func (g *Gate) State() State { return g.state }

// Check runs the guard once and returns its decision. No cached id is a
// terminal redirect to login. Otherwise the status endpoint decides:
// surveyors without a record go to the KYC form, everyone else proceeds.
func (g *Gate) Check(ctx context.Context) (Decision, error) {
	g.state = StateChecking

	userID := g.session.UserID()
	if userID == "" {
		g.state = StateRedirecting
		return RedirectLogin, nil
	}

	status, err := g.fetchStatus(ctx, userID)
	if err != nil {
		// Transient failures proceed rather than trap the user in a
		// redirect loop.
		g.state = StateAuthorized
		return Proceed, err
	}

	if status.Role.RequiresKYC() && status.HasKYC != nil && !*status.HasKYC {
		g.state = StateRedirecting
		return RedirectKYC, nil
	}

	g.state = StateAuthorized
	return Proceed, nil
}

func (g *Gate) fetchStatus(ctx context.Context, userID string) (*statusResponse, error) {
	u := fmt.Sprintf("%s/api/auth/check-kyc?userId=%s", g.baseURL, url.QueryEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("check-kyc returned status %d", resp.StatusCode)
	}

	var status statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}
	return &status, nil
}
