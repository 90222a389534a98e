package view

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SayubShakya/recipenest-client/internal/client"
	"github.com/SayubShakya/recipenest-client/internal/service"
	"github.com/SayubShakya/recipenest-client/internal/session"
	"github.com/SayubShakya/recipenest-client/internal/types"
)

// fakeAuthBackend mimics the auth endpoints: login reports failures through
// the body statusCode while the HTTP status stays 200.
type fakeAuthBackend struct {
	password   string
	role       string
	loginCalls atomic.Int64
}

func (b *fakeAuthBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/rest/auth/login", func(w http.ResponseWriter, r *http.Request) {
		b.loginCalls.Add(1)
		var req types.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		if req.Password != b.password {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"statusCode": 401,
				"message":    "Invalid email or password",
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"statusCode": 200,
			"message":    "Login successful",
			"data":       "token-abc",
		})
	})
	mux.HandleFunc("GET /api/rest/auth/authorized", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token-abc" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": types.AuthorizedUser{ID: 5, Name: "Chef Test", Email: "chef@test.com", Role: b.role},
		})
	})
	return mux
}

func newLoginFlow(t *testing.T, backend *fakeAuthBackend) (*LoginFlow, session.Store) {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	store := session.NewMemStore()
	api := client.New(server.URL+"/api/rest/", 5*time.Second, store)
	return NewLoginFlow(service.NewAuthService(api, store)), store
}

func TestLoginFlowHappyPath(t *testing.T) {
	backend := &fakeAuthBackend{password: "secret1", role: types.RoleChef}
	flow, store := newLoginFlow(t, backend)
	ctx := context.Background()

	assert.Equal(t, StateAnonymous, flow.State())

	require.NoError(t, flow.Submit(ctx, "chef@test.com", "secret1"))
	assert.Equal(t, StateAuthenticated, flow.State())
	assert.Equal(t, "token-abc", store.Token())

	route, err := flow.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, RouteChefDashboard, route)

	// The authorized user is persisted alongside the token
	s, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, s.User)
	assert.Equal(t, "chef@test.com", s.User.Email)
}

func TestLoginFlowInvalidInputSkipsNetwork(t *testing.T) {
	backend := &fakeAuthBackend{password: "secret1", role: types.RoleChef}
	flow, store := newLoginFlow(t, backend)
	ctx := context.Background()

	err := flow.Submit(ctx, "", "secret1")
	assert.Error(t, err)
	assert.Equal(t, StateAnonymous, flow.State())
	assert.Equal(t, "Please enter both email and password.", flow.Err())

	err = flow.Submit(ctx, "not-an-email", "secret1")
	assert.Error(t, err)
	assert.Equal(t, "Please enter a valid email address.", flow.Err())

	assert.Zero(t, backend.loginCalls.Load(), "invalid input never reaches the backend")
	assert.Empty(t, store.Token())
}

func TestLoginFlowRejectedCredentials(t *testing.T) {
	backend := &fakeAuthBackend{password: "secret1", role: types.RoleChef}
	flow, store := newLoginFlow(t, backend)
	ctx := context.Background()

	err := flow.Submit(ctx, "chef@test.com", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrLoginFailed)
	assert.Equal(t, StateLoginFailed, flow.State())
	assert.Equal(t, "Invalid email or password", flow.Err())
	assert.Empty(t, store.Token(), "no session is stored for a rejected login")

	// Resolve is only valid once authenticated
	_, err = flow.Resolve(ctx)
	assert.Error(t, err)

	// Reset re-arms the form, then a correct retry succeeds
	flow.Reset()
	assert.Equal(t, StateAnonymous, flow.State())
	assert.Empty(t, flow.Err())

	require.NoError(t, flow.Submit(ctx, "chef@test.com", "secret1"))
	assert.Equal(t, StateAuthenticated, flow.State())
}

func TestLoginFlowUnknownRoleStaysPut(t *testing.T) {
	backend := &fakeAuthBackend{password: "secret1", role: "AUDITOR"}
	flow, store := newLoginFlow(t, backend)
	ctx := context.Background()

	require.NoError(t, flow.Submit(ctx, "chef@test.com", "secret1"))
	route, err := flow.Resolve(ctx)
	require.NoError(t, err)
	assert.Empty(t, route, "unrecognized roles route nowhere")
	assert.Equal(t, "token-abc", store.Token(), "the session is kept")
}

func TestLoginFlowLogout(t *testing.T) {
	backend := &fakeAuthBackend{password: "secret1", role: types.RoleAdmin}
	flow, store := newLoginFlow(t, backend)
	ctx := context.Background()

	require.NoError(t, flow.Submit(ctx, "admin@test.com", "secret1"))
	route, err := flow.Logout()
	require.NoError(t, err)
	assert.Equal(t, RouteRoot, route)
	assert.Equal(t, StateAnonymous, flow.State())
	assert.Empty(t, store.Token())
}

func TestDashboardRoute(t *testing.T) {
	assert.Equal(t, RouteAdminDashboard, DashboardRoute(types.RoleAdmin))
	assert.Equal(t, RouteChefDashboard, DashboardRoute(types.RoleChef))
	assert.Equal(t, RouteFoodLoverDashboard, DashboardRoute(types.RoleFoodLover))
	assert.Empty(t, DashboardRoute("SOMETHING_ELSE"))
	assert.Empty(t, DashboardRoute(""))
}
