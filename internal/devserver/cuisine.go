package devserver

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/SayubShakya/recipenest-client/internal/types"
)

func (s *Server) handleListCuisines(c *gin.Context) {
	var cuisines []Cuisine
	if err := s.db.Order("id").Find(&cuisines).Error; err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to fetch cuisines")
		return
	}
	itemsResponse(c, cuisines)
}

func (s *Server) handleCreateCuisine(c *gin.Context) {
	var req types.CuisinePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || utf8.RuneCountInString(name) > 100 {
		errorResponse(c, http.StatusBadRequest, "Cuisine name must be between 1 and 100 characters")
		return
	}

	cuisine := Cuisine{Name: name}
	if req.ImageURL != nil {
		cuisine.ImageURL = *req.ImageURL
	}
	if err := s.db.Create(&cuisine).Error; err != nil {
		errorResponse(c, http.StatusConflict, "A cuisine with this name already exists")
		return
	}
	dataResponse(c, http.StatusCreated, cuisine)
}

func (s *Server) handleUpdateCuisine(c *gin.Context) {
	var req types.CuisinePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || utf8.RuneCountInString(name) > 100 {
		errorResponse(c, http.StatusBadRequest, "Cuisine name must be between 1 and 100 characters")
		return
	}

	var cuisine Cuisine
	if err := s.db.First(&cuisine, int64(req.ID)).Error; err != nil {
		errorResponse(c, http.StatusNotFound, "Cuisine not found")
		return
	}

	cuisine.Name = name
	cuisine.ImageURL = ""
	if req.ImageURL != nil {
		cuisine.ImageURL = *req.ImageURL
	}
	if err := s.db.Save(&cuisine).Error; err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to update cuisine")
		return
	}
	dataResponse(c, http.StatusOK, cuisine)
}

func (s *Server) handleDeleteCuisine(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid cuisine id")
		return
	}

	var cuisine Cuisine
	if err := s.db.First(&cuisine, id).Error; err != nil {
		errorResponse(c, http.StatusNotFound, "Cuisine not found")
		return
	}

	// Recipes reference cuisines; refuse to orphan them.
	var count int64
	s.db.Model(&Recipe{}).Where("cuisine_id = ?", id).Count(&count)
	if count > 0 {
		errorResponse(c, http.StatusConflict, "Cuisine is referenced by existing recipes")
		return
	}

	if err := s.db.Delete(&cuisine).Error; err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to delete cuisine")
		return
	}
	c.Status(http.StatusNoContent)
}
