package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SayubShakya/recipenest-client/internal/types"
)

func TestCuisineFormValidate(t *testing.T) {
	name, image, err := CuisineForm{Name: "  Nepali ", ImageURL: " http://img.test/n.png "}.Validate()
	require.NoError(t, err)
	assert.Equal(t, "Nepali", name)
	assert.Equal(t, "http://img.test/n.png", image)

	_, _, err = CuisineForm{Name: "   "}.Validate()
	assert.EqualError(t, err, "Cuisine name cannot be empty")

	_, _, err = CuisineForm{Name: strings.Repeat("a", 101)}.Validate()
	assert.EqualError(t, err, "Cuisine name cannot exceed 100 characters")

	// The empty and too-long rejections cannot both fire
	_, _, err = CuisineForm{Name: strings.Repeat(" ", 150)}.Validate()
	assert.EqualError(t, err, "Cuisine name cannot be empty")

	_, _, err = CuisineForm{Name: "Thai", ImageURL: "ftp://img.test/t.png"}.Validate()
	assert.EqualError(t, err, "Please enter a valid URL (starting with http:// or https://)")

	_, _, err = CuisineForm{Name: "Thai", ImageURL: "http://" + strings.Repeat("a", 250)}.Validate()
	assert.EqualError(t, err, "Image URL cannot exceed 255 characters")

	// An empty image URL is allowed
	_, image, err = CuisineForm{Name: "Thai"}.Validate()
	require.NoError(t, err)
	assert.Empty(t, image)
}

func TestNameCapsCountCharactersNotBytes(t *testing.T) {
	// 60 two-byte runes: 120 bytes but only 60 characters, well under the cap
	accented := strings.Repeat("é", 60)
	name, _, err := CuisineForm{Name: accented}.Validate()
	require.NoError(t, err)
	assert.Equal(t, accented, name)

	roleName, err := RoleForm{Name: strings.Repeat("é", 30)}.Validate()
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", 30), roleName)

	// One rune over the cap still trips it
	_, _, err = CuisineForm{Name: strings.Repeat("é", 101)}.Validate()
	assert.EqualError(t, err, "Cuisine name cannot exceed 100 characters")

	_, err = RoleForm{Name: strings.Repeat("é", 51)}.Validate()
	assert.EqualError(t, err, "Role name cannot exceed 50 characters")

	// The URL cap counts characters the same way
	_, image, err := CuisineForm{Name: "Thai", ImageURL: "http://img.test/" + strings.Repeat("é", 200)}.Validate()
	require.NoError(t, err)
	assert.NotEmpty(t, image)
}

func TestCuisineFormNoChanges(t *testing.T) {
	original := &types.Cuisine{ID: 1, Name: "Nepali", ImageURL: "http://img.test/n.png"}

	_, _, err := CuisineForm{Name: "Nepali", ImageURL: "http://img.test/n.png", Original: original}.Validate()
	assert.EqualError(t, err, "No changes detected")

	// Whitespace-only edits count as no change
	_, _, err = CuisineForm{Name: " Nepali ", ImageURL: "http://img.test/n.png", Original: original}.Validate()
	assert.EqualError(t, err, "No changes detected")

	name, _, err := CuisineForm{Name: "Newari", ImageURL: "http://img.test/n.png", Original: original}.Validate()
	require.NoError(t, err)
	assert.Equal(t, "Newari", name)
}

func TestRoleFormValidate(t *testing.T) {
	name, err := RoleForm{Name: " Moderator "}.Validate()
	require.NoError(t, err)
	assert.Equal(t, "Moderator", name)

	_, err = RoleForm{Name: ""}.Validate()
	assert.EqualError(t, err, "Role name cannot be empty")

	_, err = RoleForm{Name: strings.Repeat("r", 51)}.Validate()
	assert.EqualError(t, err, "Role name cannot exceed 50 characters")

	_, err = RoleForm{Name: "Chef", Original: &types.Role{ID: 2, Name: "Chef"}}.Validate()
	assert.EqualError(t, err, "No changes detected")
}

func TestRecipeFormValidate(t *testing.T) {
	valid := RecipeForm{
		Title:       "Momo",
		Description: "Dumplings",
		Ingredients: "Flour, chicken",
		Recipe:      "Fold and steam",
		CuisineID:   1,
		ImageURL:    "http://img.test/momo.png",
	}
	assert.Empty(t, valid.Validate())

	errs := RecipeForm{}.Validate()
	assert.Equal(t, "Title is required", errs["title"])
	assert.Equal(t, "Description is required", errs["description"])
	assert.Equal(t, "Ingredients are required", errs["ingredients"])
	assert.Equal(t, "Recipe is required", errs["recipe"])
	assert.Equal(t, "Cuisine is required", errs["cuisine_id"])
	assert.Equal(t, "Image URL is required", errs["image_url"])

	bad := valid
	bad.ImageURL = "img.test/momo.png"
	errs = bad.Validate()
	assert.Equal(t, "Please enter a valid URL", errs["image_url"])
	assert.Len(t, errs, 1)
}

func TestRecipeFormPayload(t *testing.T) {
	form := RecipeForm{
		Title:       " Momo ",
		Description: "Dumplings",
		Ingredients: "Flour",
		Recipe:      "Steam",
		CuisineID:   3,
		ImageURL:    "http://img.test/momo.png",
	}
	p := form.Payload(7)
	assert.Equal(t, types.ID(7), p.ID)
	assert.Equal(t, "Momo", p.Title)
	assert.Equal(t, types.ID(3), p.CuisineID)

	created := form.Payload(0)
	assert.Equal(t, types.ID(0), created.ID)
}

func TestLoginFormValidate(t *testing.T) {
	assert.NoError(t, LoginForm{Email: "chef@test.com", Password: "pw"}.Validate())

	err := LoginForm{Email: "", Password: "pw"}.Validate()
	assert.EqualError(t, err, "Please enter both email and password.")

	err = LoginForm{Email: "chef@test.com", Password: ""}.Validate()
	assert.EqualError(t, err, "Please enter both email and password.")

	err = LoginForm{Email: "not-an-email", Password: "pw"}.Validate()
	assert.EqualError(t, err, "Please enter a valid email address.")
}

func TestRegisterFormValidate(t *testing.T) {
	valid := RegisterForm{
		FirstName:       "Sayub",
		LastName:        "Shakya",
		PhoneNumber:     "9800000000",
		Email:           "sayub@test.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		RoleID:          2,
	}
	assert.NoError(t, valid.Validate())

	missing := valid
	missing.LastName = ""
	assert.EqualError(t, missing.Validate(), "All fields are required")

	badPhone := valid
	badPhone.PhoneNumber = "98-000"
	assert.EqualError(t, badPhone.Validate(), "Invalid phone number format. Only digits (10-15 characters) are allowed.")

	badEmail := valid
	badEmail.Email = "sayub@test"
	assert.EqualError(t, badEmail.Validate(), "Invalid email format")

	payload := valid.Payload()
	assert.Equal(t, "sayub@test.com", payload.Email)
	assert.Equal(t, types.ID(2), payload.RoleID)
}

func TestResetPasswordFormValidate(t *testing.T) {
	valid := ResetPasswordForm{
		CurrentPassword: "old",
		NewPassword:     "secret1",
		ConfirmPassword: "secret1",
	}
	assert.NoError(t, valid.Validate())

	err := ResetPasswordForm{NewPassword: "secret1", ConfirmPassword: "secret1"}.Validate()
	assert.EqualError(t, err, "Please enter the current password.")

	err = ResetPasswordForm{CurrentPassword: "old", NewPassword: "secret1", ConfirmPassword: "secret2"}.Validate()
	assert.EqualError(t, err, "New passwords do not match.")

	err = ResetPasswordForm{CurrentPassword: "old", NewPassword: "abc", ConfirmPassword: "abc"}.Validate()
	assert.EqualError(t, err, "New password must be at least 6 characters long.")
}
