package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/SayubShakya/recipenest-client/config"
	"github.com/SayubShakya/recipenest-client/internal/client"
	"github.com/SayubShakya/recipenest-client/internal/service"
	"github.com/SayubShakya/recipenest-client/internal/session"
	"github.com/SayubShakya/recipenest-client/internal/types"
)

// app wires the configuration, session store and services shared by every
// command.
type app struct {
	cfg       *config.Config
	store     session.Store
	auth      *service.AuthService
	cuisines  *service.CuisineService
	roles     *service.RoleService
	recipes   *service.RecipeService
	users     *service.UserService
	favorites *service.FavoriteService
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	store := session.NewFileStore(cfg.SessionFile)
	api := client.New(cfg.APIBaseURL, cfg.RequestTimeout, store)

	return &app{
		cfg:       cfg,
		store:     store,
		auth:      service.NewAuthService(api, store),
		cuisines:  service.NewCuisineService(api),
		roles:     service.NewRoleService(api),
		recipes:   service.NewRecipeService(api),
		users:     service.NewUserService(api),
		favorites: service.NewFavoriteService(api),
	}, nil
}

func parseID(raw string) (types.ID, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid id: %q", raw)
	}
	return types.ID(n), nil
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func printPageFooter(page, total int) {
	if total > 1 {
		fmt.Printf("\nPage %d of %d\n", page, total)
	}
}
