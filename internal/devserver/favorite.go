package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SayubShakya/recipenest-client/internal/types"
)

// handleListFavorites returns the caller's favorited recipes as a recipe list.
func (s *Server) handleListFavorites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var favorites []Favorite
	if err := s.db.Where("user_id = ?", userID).Order("recipe_id").Find(&favorites).Error; err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}
	if len(favorites) == 0 {
		itemsResponse(c, []types.Recipe{})
		return
	}

	ids := make([]int64, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.RecipeID)
	}
	var recipes []Recipe
	if err := s.db.Preload("Cuisine").Where("id IN ?", ids).Order("id").Find(&recipes).Error; err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}
	wire := make([]types.Recipe, 0, len(recipes))
	for _, r := range recipes {
		wire = append(wire, wireRecipe(r))
	}
	itemsResponse(c, wire)
}

// handleSetFavorite marks or unmarks a recipe for the caller, idempotently.
func (s *Server) handleSetFavorite(c *gin.Context) {
	var req types.FavoritePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var recipe Recipe
	if err := s.db.First(&recipe, int64(req.RecipeID)).Error; err != nil {
		errorResponse(c, http.StatusNotFound, "Recipe not found")
		return
	}

	if req.IsFavorite {
		var existing Favorite
		err := s.db.Where("user_id = ? AND recipe_id = ?", userID, recipe.ID).First(&existing).Error
		if err != nil {
			fav := Favorite{UserID: userID, RecipeID: recipe.ID}
			if err := s.db.Create(&fav).Error; err != nil {
				errorResponse(c, http.StatusInternalServerError, "Failed to save favorite")
				return
			}
		}
	} else {
		if err := s.db.Where("user_id = ? AND recipe_id = ?", userID, recipe.ID).Delete(&Favorite{}).Error; err != nil {
			errorResponse(c, http.StatusInternalServerError, "Failed to remove favorite")
			return
		}
	}
	dataResponse(c, http.StatusOK, gin.H{"recipe_id": types.ID(recipe.ID), "is_favorite": req.IsFavorite})
}
