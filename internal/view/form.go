package view

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/SayubShakya/recipenest-client/internal/types"
)

// ValidationError is a client-side form rejection. It is rendered inline and
// never reaches the backend.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

const (
	maxNameLength = 100
	maxRoleLength = 50
	maxURLLength  = 255
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)
)

// CuisineForm collects input for the add/edit cuisine modals. Original is set
// when editing so unchanged submissions can be rejected locally.
type CuisineForm struct {
	Name     string
	ImageURL string
	Original *types.Cuisine
}

// Validate returns the trimmed name and image URL, or the inline error that
// keeps the modal open. The empty-name and too-long messages are mutually
// exclusive for a single submission.
func (f CuisineForm) Validate() (name, imageURL string, err error) {
	name = strings.TrimSpace(f.Name)
	imageURL = strings.TrimSpace(f.ImageURL)

	if name == "" {
		return "", "", &ValidationError{Field: "name", Message: "Cuisine name cannot be empty"}
	}
	// Caps count characters, not bytes
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", "", &ValidationError{Field: "name", Message: "Cuisine name cannot exceed 100 characters"}
	}
	if imageURL != "" && !strings.HasPrefix(imageURL, "http") {
		return "", "", &ValidationError{Field: "image_url", Message: "Please enter a valid URL (starting with http:// or https://)"}
	}
	if utf8.RuneCountInString(imageURL) > maxURLLength {
		return "", "", &ValidationError{Field: "image_url", Message: "Image URL cannot exceed 255 characters"}
	}
	if f.Original != nil && name == f.Original.Name && imageURL == f.Original.ImageURL {
		return "", "", &ValidationError{Message: "No changes detected"}
	}
	return name, imageURL, nil
}

// RoleForm collects input for the add/edit role modals.
type RoleForm struct {
	Name     string
	Original *types.Role
}

func (f RoleForm) Validate() (name string, err error) {
	name = strings.TrimSpace(f.Name)
	if name == "" {
		return "", &ValidationError{Field: "name", Message: "Role name cannot be empty"}
	}
	if utf8.RuneCountInString(name) > maxRoleLength {
		return "", &ValidationError{Field: "name", Message: "Role name cannot exceed 50 characters"}
	}
	if f.Original != nil && name == f.Original.Name {
		return "", &ValidationError{Message: "No changes detected"}
	}
	return name, nil
}

// RecipeForm collects input for the recipe create/edit screen. Every field is
// required; errors are keyed by field so the view can render them next to
// their inputs.
type RecipeForm struct {
	Title       string
	Description string
	Ingredients string
	Recipe      string
	CuisineID   types.ID
	ImageURL    string
}

// Validate returns field-keyed errors; an empty map means the form may be
// submitted.
func (f RecipeForm) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(f.Description) == "" {
		errs["description"] = "Description is required"
	}
	if strings.TrimSpace(f.Ingredients) == "" {
		errs["ingredients"] = "Ingredients are required"
	}
	if strings.TrimSpace(f.Recipe) == "" {
		errs["recipe"] = "Recipe is required"
	}
	if f.CuisineID == 0 {
		errs["cuisine_id"] = "Cuisine is required"
	}
	switch url := strings.TrimSpace(f.ImageURL); {
	case url == "":
		errs["image_url"] = "Image URL is required"
	case !strings.HasPrefix(url, "http"):
		errs["image_url"] = "Please enter a valid URL"
	}
	return errs
}

// Payload builds the request body for a validated form. id is zero for
// creates.
func (f RecipeForm) Payload(id types.ID) types.RecipePayload {
	return types.RecipePayload{
		ID:          id,
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Ingredients: strings.TrimSpace(f.Ingredients),
		Recipe:      strings.TrimSpace(f.Recipe),
		CuisineID:   f.CuisineID,
		ImageURL:    strings.TrimSpace(f.ImageURL),
	}
}

// LoginForm holds the credentials entered on the login screen.
type LoginForm struct {
	Email    string
	Password string
}

func (f LoginForm) Validate() error {
	if f.Email == "" || f.Password == "" {
		return &ValidationError{Message: "Please enter both email and password."}
	}
	if !emailPattern.MatchString(f.Email) {
		return &ValidationError{Field: "email", Message: "Please enter a valid email address."}
	}
	return nil
}

// RegisterForm holds the registration fields.
type RegisterForm struct {
	FirstName       string
	LastName        string
	PhoneNumber     string
	Email           string
	Password        string
	ConfirmPassword string
	RoleID          types.ID
}

func (f RegisterForm) Validate() error {
	if f.FirstName == "" || f.LastName == "" || f.PhoneNumber == "" ||
		f.Email == "" || f.Password == "" || f.ConfirmPassword == "" {
		return &ValidationError{Message: "All fields are required"}
	}
	if !phonePattern.MatchString(f.PhoneNumber) {
		return &ValidationError{
			Field:   "phone_number",
			Message: "Invalid phone number format. Only digits (10-15 characters) are allowed.",
		}
	}
	if !emailPattern.MatchString(f.Email) {
		return &ValidationError{Field: "email", Message: "Invalid email format"}
	}
	return nil
}

// Payload builds the registration request for a validated form.
func (f RegisterForm) Payload() types.RegisterRequest {
	return types.RegisterRequest{
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		PhoneNumber: f.PhoneNumber,
		Email:       f.Email,
		Password:    f.Password,
		RoleID:      f.RoleID,
	}
}

// ResetPasswordForm holds the admin reset-password inputs. The current
// password is required but only checked for presence; the backend performs no
// verification of it.
type ResetPasswordForm struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

func (f ResetPasswordForm) Validate() error {
	if f.CurrentPassword == "" {
		return &ValidationError{Field: "current_password", Message: "Please enter the current password."}
	}
	if f.NewPassword != f.ConfirmPassword {
		return &ValidationError{Field: "confirm_password", Message: "New passwords do not match."}
	}
	if len(f.NewPassword) < 6 {
		return &ValidationError{Field: "new_password", Message: "New password must be at least 6 characters long."}
	}
	return nil
}
