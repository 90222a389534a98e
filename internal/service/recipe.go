package service

import (
	"context"

	"github.com/SayubShakya/recipenest-client/internal/client"
	"github.com/SayubShakya/recipenest-client/internal/types"
)

type RecipeService struct {
	client *client.Client
}

func NewRecipeService(c *client.Client) *RecipeService {
	return &RecipeService{client: c}
}

func (s *RecipeService) List(ctx context.Context) ([]types.Recipe, error) {
	var recipes []types.Recipe
	if err := s.client.GetItems(ctx, "recipes", &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// Get fetches a single recipe; the id travels as a query parameter.
func (s *RecipeService) Get(ctx context.Context, id types.ID) (*types.Recipe, error) {
	var recipe types.Recipe
	if err := s.client.GetData(ctx, "recipes?id="+id.String(), &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) Create(ctx context.Context, payload types.RecipePayload) error {
	_, err := s.client.Post(ctx, "recipes", payload)
	return err
}

func (s *RecipeService) Update(ctx context.Context, payload types.RecipePayload) error {
	_, err := s.client.Put(ctx, "recipes", payload)
	return err
}

func (s *RecipeService) Delete(ctx context.Context, id types.ID) error {
	return s.client.Delete(ctx, "recipes?id="+id.String())
}
