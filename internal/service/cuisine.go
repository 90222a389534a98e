package service

import (
	"context"

	"github.com/SayubShakya/recipenest-client/internal/client"
	"github.com/SayubShakya/recipenest-client/internal/types"
)

type CuisineService struct {
	client *client.Client
}

func NewCuisineService(c *client.Client) *CuisineService {
	return &CuisineService{client: c}
}

func (s *CuisineService) List(ctx context.Context) ([]types.Cuisine, error) {
	var cuisines []types.Cuisine
	if err := s.client.GetItems(ctx, "cuisines", &cuisines); err != nil {
		return nil, err
	}
	return cuisines, nil
}

// Create adds a cuisine. An empty image URL is sent as JSON null, matching
// what the backend expects for an optional image.
func (s *CuisineService) Create(ctx context.Context, name, imageURL string) error {
	_, err := s.client.Post(ctx, "cuisines", types.CuisinePayload{
		Name:     name,
		ImageURL: optionalString(imageURL),
	})
	return err
}

func (s *CuisineService) Update(ctx context.Context, id types.ID, name, imageURL string) error {
	_, err := s.client.Put(ctx, "cuisines", types.CuisinePayload{
		ID:       id,
		Name:     name,
		ImageURL: optionalString(imageURL),
	})
	return err
}

func (s *CuisineService) Delete(ctx context.Context, id types.ID) error {
	return s.client.Delete(ctx, "cuisines?id="+id.String())
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
