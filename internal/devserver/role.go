package devserver

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/SayubShakya/recipenest-client/internal/types"
)

func (s *Server) handleListRoles(c *gin.Context) {
	var roles []Role
	if err := s.db.Order("id").Find(&roles).Error; err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to fetch roles")
		return
	}
	itemsResponse(c, roles)
}

func (s *Server) handleCreateRole(c *gin.Context) {
	var req types.RolePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || utf8.RuneCountInString(name) > 50 {
		errorResponse(c, http.StatusBadRequest, "Role name must be between 1 and 50 characters")
		return
	}

	role := Role{Name: name}
	if err := s.db.Create(&role).Error; err != nil {
		errorResponse(c, http.StatusConflict, "A role with this name already exists")
		return
	}
	dataResponse(c, http.StatusCreated, role)
}

func (s *Server) handleUpdateRole(c *gin.Context) {
	var req types.RolePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || utf8.RuneCountInString(name) > 50 {
		errorResponse(c, http.StatusBadRequest, "Role name must be between 1 and 50 characters")
		return
	}

	var role Role
	if err := s.db.First(&role, int64(req.ID)).Error; err != nil {
		errorResponse(c, http.StatusNotFound, "Role not found")
		return
	}

	if strings.EqualFold(role.Name, "admin") && !strings.EqualFold(name, "admin") {
		errorResponse(c, http.StatusForbidden, "The Admin role cannot be renamed")
		return
	}

	role.Name = name
	if err := s.db.Save(&role).Error; err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to update role")
		return
	}
	dataResponse(c, http.StatusOK, role)
}

func (s *Server) handleDeleteRole(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid role id")
		return
	}

	var role Role
	if err := s.db.First(&role, id).Error; err != nil {
		errorResponse(c, http.StatusNotFound, "Role not found")
		return
	}

	// The Admin role is protected by policy.
	if strings.EqualFold(role.Name, "admin") {
		errorResponse(c, http.StatusForbidden, "The Admin role cannot be deleted")
		return
	}

	var count int64
	s.db.Model(&User{}).Where("role_id = ?", id).Count(&count)
	if count > 0 {
		errorResponse(c, http.StatusConflict, "Role is assigned to existing users")
		return
	}

	if err := s.db.Delete(&role).Error; err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to delete role")
		return
	}
	c.Status(http.StatusNoContent)
}
