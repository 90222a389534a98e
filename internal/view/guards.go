package view

import (
	"github.com/SayubShakya/recipenest-client/internal/types"
)

// Guards run before a modal opens. A blocked action returns a reason for a
// toast and never issues a request.

// CanDeleteRole reports whether the delete confirmation may open for a role.
// The core Admin role is protected by policy.
func CanDeleteRole(role types.Role) (bool, string) {
	if role.IsAdmin() {
		return false, "The core 'Admin' role cannot be deleted."
	}
	return true, ""
}

// CanToggleUserStatus reports whether the activate/deactivate confirmation
// may open for a user.
func CanToggleUserStatus(user types.User, activate bool) (bool, string) {
	if user.Role == types.RoleAdmin || user.Role == "Admin" {
		if activate {
			return false, "The primary admin user cannot be activated through this interface."
		}
		return false, "The primary admin user cannot be deactivated through this interface."
	}
	if activate && user.IsActive {
		return false, "User is already active."
	}
	if !activate && !user.IsActive {
		return false, "User is already inactive."
	}
	return true, ""
}
