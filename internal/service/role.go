package service

import (
	"context"

	"github.com/SayubShakya/recipenest-client/internal/client"
	"github.com/SayubShakya/recipenest-client/internal/types"
)

type RoleService struct {
	client *client.Client
}

func NewRoleService(c *client.Client) *RoleService {
	return &RoleService{client: c}
}

func (s *RoleService) List(ctx context.Context) ([]types.Role, error) {
	var roles []types.Role
	if err := s.client.GetItems(ctx, "roles", &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (s *RoleService) Create(ctx context.Context, name string) error {
	_, err := s.client.Post(ctx, "roles", types.RolePayload{Name: name})
	return err
}

func (s *RoleService) Update(ctx context.Context, id types.ID, name string) error {
	_, err := s.client.Put(ctx, "roles", types.RolePayload{ID: id, Name: name})
	return err
}

func (s *RoleService) Delete(ctx context.Context, id types.ID) error {
	return s.client.Delete(ctx, "roles?id="+id.String())
}
