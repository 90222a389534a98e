package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Role names as returned by the auth/authorized endpoint.
const (
	RoleAdmin     = "ADMIN"
	RoleChef      = "CHEF"
	RoleFoodLover = "FOOD_LOVER"
)

// ID is a record identifier. The backend is not consistent about whether ids
// travel as JSON numbers or strings, so unmarshalling accepts both.
type ID int64

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	// Try number first
	var num int64
	if err := json.Unmarshal(data, &num); err == nil {
		*id = ID(num)
		return nil
	}

	// Fall back to a quoted string
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str == "" {
			*id = 0
			return nil
		}
		parsed, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", str, err)
		}
		*id = ID(parsed)
		return nil
	}

	return fmt.Errorf("invalid id: %s", string(data))
}

// User represents a user account as served by the users endpoints.
type User struct {
	ID          ID     `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	About       string `json:"about,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Role        string `json:"role"`
	IsActive    bool   `json:"is_active"`
}

// FullName returns the user's display name.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Role represents a user role. The role named "Admin" is protected by policy
// and cannot be removed through the client.
type Role struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// IsAdmin reports whether the role is the protected admin role.
func (r Role) IsAdmin() bool {
	return strings.EqualFold(r.Name, "admin")
}

// Cuisine represents a cuisine category. ImageURL is optional and, when
// present, must start with http(s).
type Cuisine struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
}

// Recipe represents a recipe. Ingredients and Recipe (the instructions) are
// newline-delimited text blocks; CuisineID references an existing Cuisine.
type Recipe struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Ingredients string `json:"ingredients"`
	Recipe      string `json:"recipe"`
	CuisineID   ID     `json:"cuisine_id"`
	Cuisine     string `json:"cuisine,omitempty"`
	Category    string `json:"category,omitempty"`
	Dietary     string `json:"dietary,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// AuthorizedUser is the profile returned by GET auth/authorized, persisted in
// the session after login.
type AuthorizedUser struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ReadableString converts an enum-style value such as FOOD_LOVER into a
// display form ("Food Lover").
func ReadableString(value string) string {
	words := strings.Split(strings.ToLower(value), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
