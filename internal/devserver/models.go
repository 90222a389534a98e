package devserver

import (
	"time"

	"github.com/SayubShakya/recipenest-client/internal/types"
)

type Role struct {
	ID        int64     `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type User struct {
	ID           int64     `gorm:"primarykey" json:"id"`
	FirstName    string    `gorm:"size:100;not null" json:"first_name"`
	LastName     string    `gorm:"size:100;not null" json:"last_name"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PhoneNumber  string    `gorm:"size:20" json:"phone_number"`
	About        string    `gorm:"type:text" json:"about"`
	ImageURL     string    `gorm:"size:255" json:"image_url"`
	PasswordHash string    `gorm:"not null" json:"-"`
	RoleID       int64     `gorm:"not null" json:"-"`
	Role         *Role     `json:"-"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

type Cuisine struct {
	ID        int64     `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	ImageURL  string    `gorm:"size:255" json:"image_url,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Recipe struct {
	ID          int64     `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Ingredients string    `gorm:"type:text;not null" json:"ingredients"`
	Recipe      string    `gorm:"type:text;not null" json:"recipe"`
	CuisineID   int64     `gorm:"not null" json:"cuisine_id"`
	Cuisine     *Cuisine  `json:"-"`
	Category    string    `gorm:"size:50" json:"category,omitempty"`
	Dietary     string    `gorm:"size:50" json:"dietary,omitempty"`
	ImageURL    string    `gorm:"size:255" json:"image_url,omitempty"`
	UserID      int64     `json:"-"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

type Favorite struct {
	ID        int64     `gorm:"primarykey" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_user_recipe" json:"-"`
	RecipeID  int64     `gorm:"not null;uniqueIndex:idx_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `json:"-"`
}

// wireUser flattens a user and its role into the shape the client consumes.
func wireUser(u User) types.User {
	roleName := ""
	if u.Role != nil {
		roleName = u.Role.Name
	}
	return types.User{
		ID:          types.ID(u.ID),
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		About:       u.About,
		ImageURL:    u.ImageURL,
		Role:        roleName,
		IsActive:    u.IsActive,
	}
}

func wireRecipe(r Recipe) types.Recipe {
	cuisineName := ""
	if r.Cuisine != nil {
		cuisineName = r.Cuisine.Name
	}
	return types.Recipe{
		ID:          types.ID(r.ID),
		Title:       r.Title,
		Description: r.Description,
		Ingredients: r.Ingredients,
		Recipe:      r.Recipe,
		CuisineID:   types.ID(r.CuisineID),
		Cuisine:     cuisineName,
		Category:    r.Category,
		Dietary:     r.Dietary,
		ImageURL:    r.ImageURL,
	}
}
