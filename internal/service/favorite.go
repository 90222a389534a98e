package service

import (
	"context"

	"github.com/SayubShakya/recipenest-client/internal/client"
	"github.com/SayubShakya/recipenest-client/internal/types"
)

type FavoriteService struct {
	client *client.Client
}

func NewFavoriteService(c *client.Client) *FavoriteService {
	return &FavoriteService{client: c}
}

// List returns the calling user's favorited recipes.
func (s *FavoriteService) List(ctx context.Context) ([]types.Recipe, error) {
	var recipes []types.Recipe
	if err := s.client.GetItems(ctx, "favorites", &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// Set marks or unmarks a recipe as a favorite. Callers refetch afterwards;
// there is no local patch of the favorites list.
func (s *FavoriteService) Set(ctx context.Context, recipeID types.ID, favorite bool) error {
	_, err := s.client.Post(ctx, "favorites", types.FavoritePayload{
		RecipeID:   recipeID,
		IsFavorite: favorite,
	})
	return err
}
