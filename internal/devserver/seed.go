package devserver

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/SayubShakya/recipenest-client/internal/types"
)

// DefaultPassword is the password assigned to every seeded account.
const DefaultPassword = "password123"

// seed inserts the baseline roles, accounts and sample content. It is safe
// to call on every startup; existing rows are left alone.
func (s *Server) seed() error {
	roles := map[string]*Role{}
	for _, name := range []string{types.RoleAdmin, types.RoleChef, types.RoleFoodLover} {
		role := &Role{Name: name}
		if err := s.db.Where("name = ?", name).FirstOrCreate(role).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
		roles[name] = role
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []User{
		{
			FirstName:    "Admin",
			LastName:     "User",
			Email:        "admin@recipenest.com",
			PhoneNumber:  "9800000001",
			PasswordHash: string(hash),
			RoleID:       roles[types.RoleAdmin].ID,
			IsActive:     true,
		},
		{
			FirstName:    "Chef",
			LastName:     "Test",
			Email:        "chef@test.com",
			PhoneNumber:  "9800000002",
			About:        "Seeded chef account.",
			PasswordHash: string(hash),
			RoleID:       roles[types.RoleChef].ID,
			IsActive:     true,
		},
		{
			FirstName:    "Food",
			LastName:     "Lover",
			Email:        "lover@test.com",
			PhoneNumber:  "9800000003",
			PasswordHash: string(hash),
			RoleID:       roles[types.RoleFoodLover].ID,
			IsActive:     true,
		},
	}
	for i := range users {
		u := users[i]
		if err := s.db.Where("email = ?", u.Email).FirstOrCreate(&users[i], u).Error; err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}

	cuisines := map[string]*Cuisine{}
	for _, name := range []string{"Nepali", "Italian", "Indian"} {
		cuisine := &Cuisine{Name: name}
		if err := s.db.Where("name = ?", name).FirstOrCreate(cuisine).Error; err != nil {
			return fmt.Errorf("seed cuisine %s: %w", name, err)
		}
		cuisines[name] = cuisine
	}

	var recipeCount int64
	if err := s.db.Model(&Recipe{}).Count(&recipeCount).Error; err != nil {
		return err
	}
	if recipeCount > 0 {
		return nil
	}

	chefID := users[1].ID
	recipes := []Recipe{
		{
			Title:       "Chicken Momo",
			Description: "Steamed dumplings with spiced chicken filling.",
			Ingredients: "Flour, chicken, onion, garlic, ginger, spices",
			Recipe:      "Knead the dough, prepare the filling, fold and steam for 12 minutes.",
			CuisineID:   cuisines["Nepali"].ID,
			Category:    "Dinner",
			Dietary:     "Non-Vegetarian",
			UserID:      chefID,
		},
		{
			Title:       "Dal Bhat",
			Description: "Lentil soup served with steamed rice.",
			Ingredients: "Lentils, rice, turmeric, cumin, ghee",
			Recipe:      "Boil the lentils with spices, temper with ghee, serve over rice.",
			CuisineID:   cuisines["Nepali"].ID,
			Category:    "Lunch",
			Dietary:     "Vegetarian",
			UserID:      chefID,
		},
		{
			Title:       "Margherita Pizza",
			Description: "Classic pizza with tomato, mozzarella and basil.",
			Ingredients: "Pizza dough, tomato sauce, mozzarella, basil, olive oil",
			Recipe:      "Stretch the dough, top and bake at 250C until the crust blisters.",
			CuisineID:   cuisines["Italian"].ID,
			Category:    "Dinner",
			Dietary:     "Vegetarian",
			UserID:      chefID,
		},
		{
			Title:       "Butter Chicken",
			Description: "Chicken simmered in a buttery tomato gravy.",
			Ingredients: "Chicken, butter, tomato, cream, garam masala",
			Recipe:      "Marinate and grill the chicken, then simmer in the gravy.",
			CuisineID:   cuisines["Indian"].ID,
			Category:    "Dinner",
			Dietary:     "Non-Vegetarian",
			UserID:      chefID,
		},
	}
	if err := s.db.Create(&recipes).Error; err != nil {
		return fmt.Errorf("seed recipes: %w", err)
	}
	return nil
}
