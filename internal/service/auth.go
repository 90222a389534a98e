// Package service wraps the REST endpoints behind one type per resource. Each
// service owns the paths and payload shapes; state handling and validation
// stay in the views.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/SayubShakya/recipenest-client/internal/client"
	"github.com/SayubShakya/recipenest-client/internal/session"
	"github.com/SayubShakya/recipenest-client/internal/types"
)

// ErrLoginFailed wraps the server-provided message when the login body
// reports a non-200 statusCode.
var ErrLoginFailed = errors.New("login failed")

type AuthService struct {
	client *client.Client
	store  session.Store
}

func NewAuthService(c *client.Client, store session.Store) *AuthService {
	return &AuthService{client: c, store: store}
}

// Login posts credentials and, on success, persists the returned token. The
// login endpoint signals failure through the statusCode field of the body
// rather than the HTTP status.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	env, err := s.client.Post(ctx, "auth/login", types.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	if env.StatusCode != http.StatusOK {
		msg := env.ErrorMessage()
		if msg == "" {
			msg = "invalid credentials"
		}
		return fmt.Errorf("%w: %s", ErrLoginFailed, msg)
	}

	var token string
	if err := json.Unmarshal(env.Data, &token); err != nil || token == "" {
		return fmt.Errorf("%w: no token in response", ErrLoginFailed)
	}

	return s.store.Save(&session.Session{Token: token})
}

// Authorized resolves the logged-in user's profile and role and persists the
// user object alongside the token.
func (s *AuthService) Authorized(ctx context.Context) (*types.AuthorizedUser, error) {
	var user types.AuthorizedUser
	if err := s.client.GetData(ctx, "auth/authorized", &user); err != nil {
		return nil, err
	}

	current, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	current.User = &user
	if err := s.store.Save(current); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a new account. Registration does not log the user in.
func (s *AuthService) Register(ctx context.Context, req types.RegisterRequest) error {
	_, err := s.client.Post(ctx, "auth/register", req)
	return err
}

// Logout clears the stored token and user. This is local only; no backend
// call is made.
func (s *AuthService) Logout() error {
	return s.store.Clear()
}

// CurrentUser returns the persisted user object, if any.
func (s *AuthService) CurrentUser() (*types.AuthorizedUser, error) {
	sess, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return sess.User, nil
}
