package devserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/SayubShakya/recipenest-client/internal/types"
)

func (s *Server) handleGetUsers(c *gin.Context) {
	if idParam := c.Query("id"); idParam != "" {
		id, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, "Invalid user id")
			return
		}
		var user User
		if err := s.db.Preload("Role").First(&user, id).Error; err != nil {
			errorResponse(c, http.StatusNotFound, "User not found")
			return
		}
		dataResponse(c, http.StatusOK, wireUser(user))
		return
	}

	var users []User
	if err := s.db.Preload("Role").Order("id").Find(&users).Error; err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	wire := make([]types.User, 0, len(users))
	for _, u := range users {
		wire = append(wire, wireUser(u))
	}
	itemsResponse(c, wire)
}

func (s *Server) handleListChefs(c *gin.Context) {
	var users []User
	err := s.db.Preload("Role").
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", types.RoleChef).
		Order("users.id").
		Find(&users).Error
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to fetch chefs")
		return
	}
	wire := make([]types.User, 0, len(users))
	for _, u := range users {
		wire = append(wire, wireUser(u))
	}
	itemsResponse(c, wire)
}

func (s *Server) handleStatusToggle(c *gin.Context) {
	var req types.StatusTogglePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var user User
	if err := s.db.Preload("Role").First(&user, int64(req.ID)).Error; err != nil {
		errorResponse(c, http.StatusNotFound, "User not found")
		return
	}
	if user.Role != nil && strings.EqualFold(user.Role.Name, "admin") {
		errorResponse(c, http.StatusForbidden, "The admin user cannot be activated or deactivated")
		return
	}

	user.IsActive = req.IsActive
	if err := s.db.Save(&user).Error; err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to update user status")
		return
	}
	dataResponse(c, http.StatusOK, wireUser(user))
}

// handleUpdateProfile updates the authenticated user's own record.
func (s *Server) handleUpdateProfile(c *gin.Context) {
	var req types.ProfileUpdatePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FirstName == "" || req.LastName == "" {
		errorResponse(c, http.StatusBadRequest, "First name and last name are required")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var user User
	if err := s.db.Preload("Role").First(&user, userID).Error; err != nil {
		errorResponse(c, http.StatusNotFound, "User not found")
		return
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.PhoneNumber = req.PhoneNumber
	user.About = req.About
	user.ImageURL = req.ImageURL
	if err := s.db.Save(&user).Error; err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	dataResponse(c, http.StatusOK, wireUser(user))
}

func (s *Server) handleResetPassword(c *gin.Context) {
	var req types.ResetPasswordPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.NewPassword) < 6 {
		errorResponse(c, http.StatusBadRequest, "Password must be at least 6 characters long")
		return
	}

	var user User
	if err := s.db.First(&user, int64(req.ID)).Error; err != nil {
		errorResponse(c, http.StatusNotFound, "User not found")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}
	user.PasswordHash = string(hash)
	if err := s.db.Save(&user).Error; err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to reset password")
		return
	}
	dataResponse(c, http.StatusOK, gin.H{"message": "Password updated"})
}
