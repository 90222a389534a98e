package service

import (
	"context"

	"github.com/SayubShakya/recipenest-client/internal/client"
	"github.com/SayubShakya/recipenest-client/internal/types"
)

type UserService struct {
	client *client.Client
}

func NewUserService(c *client.Client) *UserService {
	return &UserService{client: c}
}

func (s *UserService) List(ctx context.Context) ([]types.User, error) {
	var users []types.User
	if err := s.client.GetItems(ctx, "users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id types.ID) (*types.User, error) {
	var user types.User
	if err := s.client.GetData(ctx, "users?id="+id.String(), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Chefs lists the users holding the CHEF role, for the browse-chefs view.
func (s *UserService) Chefs(ctx context.Context) ([]types.User, error) {
	var chefs []types.User
	if err := s.client.GetItems(ctx, "users/chefs", &chefs); err != nil {
		return nil, err
	}
	return chefs, nil
}

// ToggleStatus activates or deactivates an account.
func (s *UserService) ToggleStatus(ctx context.Context, id types.ID, active bool) error {
	_, err := s.client.Post(ctx, "users/status-toggle", types.StatusTogglePayload{
		ID:       id,
		IsActive: active,
	})
	return err
}

func (s *UserService) UpdateProfile(ctx context.Context, payload types.ProfileUpdatePayload) error {
	_, err := s.client.Put(ctx, "users/profile", payload)
	return err
}

func (s *UserService) ResetPassword(ctx context.Context, id types.ID, newPassword string) error {
	_, err := s.client.Put(ctx, "users/reset-password", types.ResetPasswordPayload{
		ID:          id,
		NewPassword: newPassword,
	})
	return err
}
