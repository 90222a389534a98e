package types

import "encoding/json"

// Envelope is the response body convention shared by every endpoint: success
// bodies carry data (lists nest {items: [...]}), error bodies carry message or
// error. The login endpoint additionally reports statusCode in the body.
type Envelope struct {
	StatusCode int             `json:"statusCode,omitempty"`
	Message    string          `json:"message,omitempty"`
	Error      string          `json:"error,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// ErrorMessage returns the server-provided error text, preferring message
// over error.
func (e *Envelope) ErrorMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// Items is the nesting used by list endpoints inside Envelope.Data.
type Items struct {
	Items json.RawMessage `json:"items"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	RoleID      ID     `json:"role_id"`
}

// CuisinePayload is the create/update body for cuisines; update includes ID.
type CuisinePayload struct {
	ID       ID      `json:"id,omitempty"`
	Name     string  `json:"name"`
	ImageURL *string `json:"image_url"`
}

type RolePayload struct {
	ID   ID     `json:"id,omitempty"`
	Name string `json:"name"`
}

type RecipePayload struct {
	ID          ID     `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Ingredients string `json:"ingredients"`
	Recipe      string `json:"recipe"`
	CuisineID   ID     `json:"cuisine_id"`
	ImageURL    string `json:"image_url"`
}

type StatusTogglePayload struct {
	ID       ID   `json:"id"`
	IsActive bool `json:"is_active"`
}

type ProfileUpdatePayload struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	About       string `json:"about"`
	ImageURL    string `json:"image_url"`
}

type ResetPasswordPayload struct {
	ID          ID     `json:"id"`
	NewPassword string `json:"new_password"`
}

type FavoritePayload struct {
	RecipeID   ID   `json:"recipe_id"`
	IsFavorite bool `json:"is_favorite"`
}
