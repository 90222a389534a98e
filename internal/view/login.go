package view

import (
	"context"
	"errors"

	"github.com/SayubShakya/recipenest-client/internal/service"
	"github.com/SayubShakya/recipenest-client/internal/types"
)

// LoginState tracks the authentication flow.
type LoginState int

const (
	StateAnonymous LoginState = iota
	StateAuthenticating
	StateAuthenticated
	// StateLoginFailed is terminal for a submission; Reset returns the flow
	// to StateAnonymous.
	StateLoginFailed
)

// Dashboard routes per role. An unrecognized role routes nowhere: the user
// stays on the login screen with the session stored.
const (
	RouteRoot               = "/"
	RouteAdminDashboard     = "/adminDashboard"
	RouteChefDashboard      = "/chefDashboard"
	RouteFoodLoverDashboard = "/foodLoverDashboard"
)

// DashboardRoute maps a role to its dashboard, or "" when the role is not one
// of the three known ones.
func DashboardRoute(role string) string {
	switch role {
	case types.RoleAdmin:
		return RouteAdminDashboard
	case types.RoleChef:
		return RouteChefDashboard
	case types.RoleFoodLover:
		return RouteFoodLoverDashboard
	default:
		return ""
	}
}

// LoginFlow is the login screen's state machine.
type LoginFlow struct {
	auth  *service.AuthService
	state LoginState
	err   string
}

func NewLoginFlow(auth *service.AuthService) *LoginFlow {
	return &LoginFlow{auth: auth, state: StateAnonymous}
}

func (f *LoginFlow) State() LoginState {
	return f.state
}

// Err returns the inline error shown on the login form.
func (f *LoginFlow) Err() string {
	return f.err
}

// Submit validates the credentials and posts them. Invalid input keeps the
// flow in StateAnonymous without any network call. A rejected login moves to
// StateLoginFailed carrying the server-provided message.
func (f *LoginFlow) Submit(ctx context.Context, email, password string) error {
	if f.state == StateAuthenticating {
		return nil
	}

	form := LoginForm{Email: email, Password: password}
	if err := form.Validate(); err != nil {
		f.state = StateAnonymous
		f.err = err.Error()
		return err
	}
	f.err = ""

	f.state = StateAuthenticating
	if err := f.auth.Login(ctx, email, password); err != nil {
		f.state = StateLoginFailed
		f.err = loginMessage(err)
		return err
	}

	f.state = StateAuthenticated
	return nil
}

// Resolve fetches the authorized user and returns the dashboard route for
// their role. An empty route with a nil error means the role was not
// recognized; the session is kept and the caller stays on the login screen.
func (f *LoginFlow) Resolve(ctx context.Context) (string, error) {
	if f.state != StateAuthenticated {
		return "", errors.New("not authenticated")
	}
	user, err := f.auth.Authorized(ctx)
	if err != nil {
		return "", err
	}
	return DashboardRoute(user.Role), nil
}

// Reset returns a failed flow to StateAnonymous so the user can retry.
func (f *LoginFlow) Reset() {
	if f.state == StateLoginFailed {
		f.state = StateAnonymous
		f.err = ""
	}
}

// Logout clears the session locally and routes back to the root.
func (f *LoginFlow) Logout() (string, error) {
	if err := f.auth.Logout(); err != nil {
		return "", err
	}
	f.state = StateAnonymous
	f.err = ""
	return RouteRoot, nil
}

func loginMessage(err error) string {
	if errors.Is(err, service.ErrLoginFailed) {
		// Strip the sentinel prefix, keeping the server message.
		msg := err.Error()
		prefix := service.ErrLoginFailed.Error() + ": "
		if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			return msg[len(prefix):]
		}
		return msg
	}
	return "Error logging in. Please try again."
}
