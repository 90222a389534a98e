package view

import (
	"context"
	"sort"

	"github.com/SayubShakya/recipenest-client/internal/service"
	"github.com/SayubShakya/recipenest-client/internal/types"
)

// PreviewCount is the bounded number of recipes shown before "View All".
const PreviewCount = 8

// Capabilities describes what a role may do; the three per-role dashboards
// collapse into one component configured by a descriptor.
type Capabilities struct {
	CanManageUsers    bool
	CanManageRecipes  bool
	CanManageCuisines bool
	CanFavorite       bool
}

// RoleDescriptor parameterizes the dashboard for one role.
type RoleDescriptor struct {
	Role  string
	Route string
	Capabilities
}

var descriptors = map[string]RoleDescriptor{
	types.RoleAdmin: {
		Role:  types.RoleAdmin,
		Route: RouteAdminDashboard,
		Capabilities: Capabilities{
			CanManageUsers:    true,
			CanManageRecipes:  true,
			CanManageCuisines: true,
		},
	},
	types.RoleChef: {
		Role:  types.RoleChef,
		Route: RouteChefDashboard,
		Capabilities: Capabilities{
			CanManageRecipes: true,
		},
	},
	types.RoleFoodLover: {
		Role:  types.RoleFoodLover,
		Route: RouteFoodLoverDashboard,
		Capabilities: Capabilities{
			CanFavorite: true,
		},
	},
}

// DescriptorFor returns the descriptor for a role name.
func DescriptorFor(role string) (RoleDescriptor, bool) {
	d, ok := descriptors[role]
	return d, ok
}

// Filters are pure client-side predicates over the fetched list; changing
// them never triggers a fetch.
type Filters struct {
	Cuisine  string
	Category string
	Dietary  string
}

func (f Filters) Match(r types.Recipe) bool {
	if f.Cuisine != "" && r.Cuisine != f.Cuisine {
		return false
	}
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.Dietary != "" && r.Dietary != f.Dietary {
		return false
	}
	return true
}

// Dashboard aggregates the role-scoped landing view: a preview grid of
// recipes and, for roles that can favorite, the favorites collection.
type Dashboard struct {
	desc      RoleDescriptor
	recipes   *service.RecipeService
	favorites *service.FavoriteService

	recipeList   []types.Recipe
	favoriteList []types.Recipe
	recipesErr   error
	favoritesErr error

	filters Filters
	showAll bool
}

func NewDashboard(desc RoleDescriptor, recipes *service.RecipeService, favorites *service.FavoriteService) *Dashboard {
	return &Dashboard{desc: desc, recipes: recipes, favorites: favorites}
}

func (d *Dashboard) Descriptor() RoleDescriptor {
	return d.desc
}

// Load issues the dashboard's fetches. The recipe and favorite fetches are
// independent; a failure in one leaves the other's result intact.
func (d *Dashboard) Load(ctx context.Context) error {
	recipes, err := d.recipes.List(ctx)
	d.recipesErr = err
	if err == nil {
		d.recipeList = recipes
	}

	if d.desc.CanFavorite {
		favorites, err := d.favorites.List(ctx)
		d.favoritesErr = err
		if err == nil {
			d.favoriteList = favorites
		}
	}

	if d.recipesErr != nil {
		return d.recipesErr
	}
	return d.favoritesErr
}

// SetFilters replaces the active filters without refetching.
func (d *Dashboard) SetFilters(f Filters) {
	d.filters = f
}

func (d *Dashboard) Filters() Filters {
	return d.filters
}

// ToggleShowAll expands or collapses the preview grid.
func (d *Dashboard) ToggleShowAll() {
	d.showAll = !d.showAll
}

// Visible returns the filtered recipes, bounded to the preview count unless
// expanded.
func (d *Dashboard) Visible() []types.Recipe {
	var out []types.Recipe
	for _, r := range d.recipeList {
		if d.filters.Match(r) {
			out = append(out, r)
		}
	}
	if !d.showAll && len(out) > PreviewCount {
		out = out[:PreviewCount]
	}
	return out
}

// Favorites returns the fetched favorites collection.
func (d *Dashboard) Favorites() []types.Recipe {
	return d.favoriteList
}

// IsFavorite reports whether the recipe is in the favorites collection.
func (d *Dashboard) IsFavorite(id types.ID) bool {
	for _, r := range d.favoriteList {
		if r.ID == id {
			return true
		}
	}
	return false
}

// ToggleFavorite flips the favorite state of a recipe and refetches both the
// recipe and favorite collections afterwards. There is no optimistic update:
// a rejected toggle leaves the heart state exactly where the backend says it
// is.
func (d *Dashboard) ToggleFavorite(ctx context.Context, id types.ID) error {
	err := d.favorites.Set(ctx, id, !d.IsFavorite(id))
	_ = d.Load(ctx)
	return err
}

// CuisineOptions returns the distinct cuisine names in the fetched list,
// sorted, for the filter dropdown. CategoryOptions and DietaryOptions do the
// same for their fields.
func (d *Dashboard) CuisineOptions() []string {
	return d.options(func(r types.Recipe) string { return r.Cuisine })
}

func (d *Dashboard) CategoryOptions() []string {
	return d.options(func(r types.Recipe) string { return r.Category })
}

func (d *Dashboard) DietaryOptions() []string {
	return d.options(func(r types.Recipe) string { return r.Dietary })
}

func (d *Dashboard) options(field func(types.Recipe) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range d.recipeList {
		v := field(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
