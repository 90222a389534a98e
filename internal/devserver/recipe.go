package devserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SayubShakya/recipenest-client/internal/types"
)

// handleGetRecipes serves both the collection and, with ?id=, a single
// record.
func (s *Server) handleGetRecipes(c *gin.Context) {
	if idParam := c.Query("id"); idParam != "" {
		id, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, "Invalid recipe id")
			return
		}
		var recipe Recipe
		if err := s.db.Preload("Cuisine").First(&recipe, id).Error; err != nil {
			errorResponse(c, http.StatusNotFound, "Recipe not found")
			return
		}
		dataResponse(c, http.StatusOK, wireRecipe(recipe))
		return
	}

	var recipes []Recipe
	if err := s.db.Preload("Cuisine").Order("id").Find(&recipes).Error; err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to fetch recipes")
		return
	}
	wire := make([]types.Recipe, 0, len(recipes))
	for _, r := range recipes {
		wire = append(wire, wireRecipe(r))
	}
	itemsResponse(c, wire)
}

func (s *Server) handleCreateRecipe(c *gin.Context) {
	var req types.RecipePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == "" || req.Ingredients == "" || req.Recipe == "" {
		errorResponse(c, http.StatusBadRequest, "Title, ingredients and recipe are required")
		return
	}

	// A recipe always references an existing cuisine.
	var cuisine Cuisine
	if err := s.db.First(&cuisine, int64(req.CuisineID)).Error; err != nil {
		errorResponse(c, http.StatusBadRequest, "Unknown cuisine")
		return
	}

	userID, _ := currentUserID(c)
	recipe := Recipe{
		Title:       req.Title,
		Description: req.Description,
		Ingredients: req.Ingredients,
		Recipe:      req.Recipe,
		CuisineID:   cuisine.ID,
		ImageURL:    req.ImageURL,
		UserID:      userID,
	}
	if err := s.db.Create(&recipe).Error; err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to create recipe")
		return
	}
	recipe.Cuisine = &cuisine
	dataResponse(c, http.StatusCreated, wireRecipe(recipe))
}

func (s *Server) handleUpdateRecipe(c *gin.Context) {
	var req types.RecipePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var recipe Recipe
	if err := s.db.First(&recipe, int64(req.ID)).Error; err != nil {
		errorResponse(c, http.StatusNotFound, "Recipe not found")
		return
	}

	var cuisine Cuisine
	if err := s.db.First(&cuisine, int64(req.CuisineID)).Error; err != nil {
		errorResponse(c, http.StatusBadRequest, "Unknown cuisine")
		return
	}

	recipe.Title = req.Title
	recipe.Description = req.Description
	recipe.Ingredients = req.Ingredients
	recipe.Recipe = req.Recipe
	recipe.CuisineID = cuisine.ID
	recipe.ImageURL = req.ImageURL
	if err := s.db.Save(&recipe).Error; err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to update recipe")
		return
	}
	recipe.Cuisine = &cuisine
	dataResponse(c, http.StatusOK, wireRecipe(recipe))
}

func (s *Server) handleDeleteRecipe(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid recipe id")
		return
	}

	var recipe Recipe
	if err := s.db.First(&recipe, id).Error; err != nil {
		errorResponse(c, http.StatusNotFound, "Recipe not found")
		return
	}

	// Favorites pointing at the recipe go with it.
	if err := s.db.Where("recipe_id = ?", id).Delete(&Favorite{}).Error; err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to delete recipe favorites")
		return
	}
	if err := s.db.Delete(&recipe).Error; err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to delete recipe")
		return
	}
	c.Status(http.StatusNoContent)
}
