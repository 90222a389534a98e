package devserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/SayubShakya/recipenest-client/internal/types"
)

// handleLogin authenticates credentials. Failures are reported through the
// statusCode field of the body, which is what the login screen branches on.
func (s *Server) handleLogin(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"statusCode": http.StatusBadRequest, "message": "Invalid request body"})
		return
	}

	var user User
	err := s.db.Preload("Role").Where("email = ?", strings.ToLower(req.Email)).First(&user).Error
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusOK, gin.H{"statusCode": http.StatusUnauthorized, "message": "Invalid email or password"})
		return
	}
	if !user.IsActive {
		c.JSON(http.StatusOK, gin.H{"statusCode": http.StatusForbidden, "message": "Account is deactivated"})
		return
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"statusCode": http.StatusInternalServerError, "message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"statusCode": http.StatusOK,
		"message":    "Login successful",
		"data":       token,
	})
}

func (s *Server) handleRegister(c *gin.Context) {
	var req struct {
		FirstName   string   `json:"first_name" binding:"required"`
		LastName    string   `json:"last_name" binding:"required"`
		PhoneNumber string   `json:"phone_number" binding:"required"`
		Email       string   `json:"email" binding:"required,email"`
		Password    string   `json:"password" binding:"required,min=6"`
		RoleID      types.ID `json:"role_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var existing User
	if err := s.db.Where("email = ?", strings.ToLower(req.Email)).First(&existing).Error; err == nil {
		errorResponse(c, http.StatusConflict, "A user with this email already exists")
		return
	}

	var role Role
	if err := s.db.First(&role, int64(req.RoleID)).Error; err != nil {
		errorResponse(c, http.StatusBadRequest, "Unknown role")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
		Email:        strings.ToLower(req.Email),
		PasswordHash: string(hash),
		RoleID:       role.ID,
		IsActive:     true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	dataResponse(c, http.StatusCreated, wireUser(user))
}

// handleAuthorized returns the logged-in user's profile and role.
func (s *Server) handleAuthorized(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var user User
	if err := s.db.Preload("Role").First(&user, userID).Error; err != nil {
		errorResponse(c, http.StatusNotFound, "User not found")
		return
	}

	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	}
	dataResponse(c, http.StatusOK, types.AuthorizedUser{
		ID:    types.ID(user.ID),
		Name:  strings.TrimSpace(user.FirstName + " " + user.LastName),
		Email: user.Email,
		Role:  roleName,
	})
}
