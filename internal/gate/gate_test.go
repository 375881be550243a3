package gate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"surveyhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusServer(t *testing.T, role models.Role, hasKYC *bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/check-kyc", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("userId"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"hasKYC": hasKYC,
			"role":   role,
		})
	}))
}

func boolPtr(b bool) *bool { return &b }

func TestCheck(t *testing.T) {
	t.Run("no session redirects to login", func(t *testing.T) {
		g := New(nil, "http://unused", NewMemorySession(""))

		decision, err := g.Check(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, RedirectLogin, decision)
		assert.Equal(t, StateRedirecting, g.State())
	})

	t.Run("surveyor without record redirects to form", func(t *testing.T) {
		srv := statusServer(t, models.RoleSurveyor, boolPtr(false))
		defer srv.Close()

		g := New(srv.Client(), srv.URL, NewMemorySession("u1"))

		decision, err := g.Check(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, RedirectKYC, decision)
		assert.Equal(t, StateRedirecting, g.State())
	})

	t.Run("verified surveyor proceeds", func(t *testing.T) {
		srv := statusServer(t, models.RoleSurveyor, boolPtr(true))
		defer srv.Close()

		g := New(srv.Client(), srv.URL, NewMemorySession("u1"))

		decision, err := g.Check(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, Proceed, decision)
		assert.Equal(t, StateAuthorized, g.State())
	})

	t.Run("manager proceeds with inapplicable flag", func(t *testing.T) {
		srv := statusServer(t, models.RoleManager, nil)
		defer srv.Close()

		g := New(srv.Client(), srv.URL, NewMemorySession("u2"))

		decision, err := g.Check(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, Proceed, decision)
	})

	t.Run("status endpoint failure proceeds with error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		g := New(srv.Client(), srv.URL, NewMemorySession("u1"))

		decision, err := g.Check(context.Background())
		assert.Error(t, err)
		assert.Equal(t, Proceed, decision)
	})

	t.Run("re-runs on every invocation", func(t *testing.T) {
		// The gate holds no verified cache: clearing the session between
		// checks flips the decision back to a login redirect.
		srv := statusServer(t, models.RoleSurveyor, boolPtr(true))
		defer srv.Close()

		session := NewMemorySession("u1")
		g := New(srv.Client(), srv.URL, session)

		decision, err := g.Check(context.Background())
		require.NoError(t, err)
		require.Equal(t, Proceed, decision)

		session.Clear()

		decision, err = g.Check(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, RedirectLogin, decision)
	})
}
