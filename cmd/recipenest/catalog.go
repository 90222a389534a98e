package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/SayubShakya/recipenest-client/internal/types"
	"github.com/SayubShakya/recipenest-client/internal/view"
)

func runCuisines(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: recipenest cuisines <list|add|update|delete> [options]")
	}
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("cuisines list", flag.ExitOnError)
		page := fs.Int("page", 1, "page number")
		size := fs.Int("size", a.cfg.PageSize, "page size")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		lv := view.NewListView(*size, a.cuisines.List)
		if err := lv.Fetch(ctx); err != nil {
			return err
		}
		lv.SetPage(*page)
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tIMAGE")
		for _, cu := range lv.PageItems() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", cu.ID, cu.Name, cu.ImageURL)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		printPageFooter(lv.Page(), lv.TotalPages())
		return nil

	case "add":
		fs := flag.NewFlagSet("cuisines add", flag.ExitOnError)
		name := fs.String("name", "", "cuisine name")
		image := fs.String("image", "", "image URL")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		form := view.CuisineForm{Name: *name, ImageURL: *image}
		cleanName, cleanImage, err := form.Validate()
		if err != nil {
			return err
		}
		if err := a.cuisines.Create(ctx, cleanName, cleanImage); err != nil {
			return err
		}
		fmt.Println("Cuisine created")
		return nil

	case "update":
		fs := flag.NewFlagSet("cuisines update", flag.ExitOnError)
		idArg := fs.String("id", "", "cuisine id")
		name := fs.String("name", "", "cuisine name")
		image := fs.String("image", "", "image URL")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		id, err := parseID(*idArg)
		if err != nil {
			return err
		}
		existing, err := findCuisine(ctx, a, id)
		if err != nil {
			return err
		}
		form := view.CuisineForm{Name: *name, ImageURL: *image, Original: existing}
		cleanName, cleanImage, err := form.Validate()
		if err != nil {
			return err
		}
		if err := a.cuisines.Update(ctx, id, cleanName, cleanImage); err != nil {
			return err
		}
		fmt.Println("Cuisine updated")
		return nil

	case "delete":
		fs := flag.NewFlagSet("cuisines delete", flag.ExitOnError)
		idArg := fs.String("id", "", "cuisine id")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		id, err := parseID(*idArg)
		if err != nil {
			return err
		}
		if err := a.cuisines.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Println("Cuisine deleted")
		return nil
	}
	return fmt.Errorf("unknown cuisines subcommand: %s", args[0])
}

func findCuisine(ctx context.Context, a *app, id types.ID) (*types.Cuisine, error) {
	items, err := a.cuisines.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("cuisine %s not found", id)
}

func runRoles(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: recipenest roles <list|add|update|delete> [options]")
	}
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("roles list", flag.ExitOnError)
		page := fs.Int("page", 1, "page number")
		size := fs.Int("size", a.cfg.PageSize, "page size")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		lv := view.NewListView(*size, a.roles.List)
		if err := lv.Fetch(ctx); err != nil {
			return err
		}
		lv.SetPage(*page)
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME")
		for _, r := range lv.PageItems() {
			fmt.Fprintf(w, "%s\t%s\n", r.ID, r.Name)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		printPageFooter(lv.Page(), lv.TotalPages())
		return nil

	case "add":
		fs := flag.NewFlagSet("roles add", flag.ExitOnError)
		name := fs.String("name", "", "role name")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		form := view.RoleForm{Name: *name}
		cleanName, err := form.Validate()
		if err != nil {
			return err
		}
		if err := a.roles.Create(ctx, cleanName); err != nil {
			return err
		}
		fmt.Println("Role created")
		return nil

	case "update":
		fs := flag.NewFlagSet("roles update", flag.ExitOnError)
		idArg := fs.String("id", "", "role id")
		name := fs.String("name", "", "role name")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		id, err := parseID(*idArg)
		if err != nil {
			return err
		}
		existing, err := findRole(ctx, a, id)
		if err != nil {
			return err
		}
		form := view.RoleForm{Name: *name, Original: existing}
		cleanName, err := form.Validate()
		if err != nil {
			return err
		}
		if err := a.roles.Update(ctx, id, cleanName); err != nil {
			return err
		}
		fmt.Println("Role updated")
		return nil

	case "delete":
		fs := flag.NewFlagSet("roles delete", flag.ExitOnError)
		idArg := fs.String("id", "", "role id")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		id, err := parseID(*idArg)
		if err != nil {
			return err
		}
		existing, err := findRole(ctx, a, id)
		if err != nil {
			return err
		}
		if ok, reason := view.CanDeleteRole(*existing); !ok {
			return fmt.Errorf("%s", reason)
		}
		if err := a.roles.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Println("Role deleted")
		return nil
	}
	return fmt.Errorf("unknown roles subcommand: %s", args[0])
}

func findRole(ctx context.Context, a *app, id types.ID) (*types.Role, error) {
	items, err := a.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("role %s not found", id)
}
