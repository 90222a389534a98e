package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/SayubShakya/recipenest-client/internal/types"
	"github.com/SayubShakya/recipenest-client/internal/view"
)

func runDashboard(args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	cuisine := fs.String("cuisine", "", "filter by cuisine name")
	category := fs.String("category", "", "filter by category")
	dietary := fs.String("dietary", "", "filter by dietary tag")
	all := fs.Bool("all", false, "show all recipes instead of the preview")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	user, err := a.auth.Authorized(ctx)
	if err != nil {
		return err
	}
	desc, ok := view.DescriptorFor(user.Role)
	if !ok {
		return fmt.Errorf("no dashboard is available for role %q", user.Role)
	}

	d := view.NewDashboard(desc, a.recipes, a.favorites)
	if err := d.Load(ctx); err != nil {
		return err
	}
	d.SetFilters(view.Filters{Cuisine: *cuisine, Category: *category, Dietary: *dietary})
	if *all {
		d.ToggleShowAll()
	}

	fmt.Printf("%s dashboard for %s\n\n", types.ReadableString(user.Role), user.Name)

	w := newTable()
	fmt.Fprintln(w, "ID\tTITLE\tCUISINE\tCATEGORY\tDIETARY\tFAVORITE")
	for _, r := range d.Visible() {
		marker := ""
		if d.Descriptor().Capabilities.CanFavorite && d.IsFavorite(r.ID) {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.Title, r.Cuisine, r.Category, r.Dietary, marker)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if opts := d.CuisineOptions(); len(opts) > 0 {
		fmt.Printf("\nCuisines: %s\n", strings.Join(opts, ", "))
	}
	if opts := d.CategoryOptions(); len(opts) > 0 {
		fmt.Printf("Categories: %s\n", strings.Join(opts, ", "))
	}
	if opts := d.DietaryOptions(); len(opts) > 0 {
		fmt.Printf("Dietary: %s\n", strings.Join(opts, ", "))
	}
	return nil
}

func runFavorites(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: recipenest favorites <list|toggle> [options]")
	}
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("favorites list", flag.ExitOnError)
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		recipes, err := a.favorites.List(ctx)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tTITLE\tCUISINE")
		for _, r := range recipes {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Title, r.Cuisine)
		}
		return w.Flush()

	case "toggle":
		fs := flag.NewFlagSet("favorites toggle", flag.ExitOnError)
		idArg := fs.String("id", "", "recipe id")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		id, err := parseID(*idArg)
		if err != nil {
			return err
		}

		user, err := a.auth.Authorized(ctx)
		if err != nil {
			return err
		}
		desc, ok := view.DescriptorFor(user.Role)
		if !ok || !desc.Capabilities.CanFavorite {
			return fmt.Errorf("role %q cannot favorite recipes", user.Role)
		}

		d := view.NewDashboard(desc, a.recipes, a.favorites)
		if err := d.Load(ctx); err != nil {
			return err
		}
		if err := d.ToggleFavorite(ctx, id); err != nil {
			return err
		}
		if d.IsFavorite(id) {
			fmt.Println("Recipe added to favorites")
		} else {
			fmt.Println("Recipe removed from favorites")
		}
		return nil
	}
	return fmt.Errorf("unknown favorites subcommand: %s", args[0])
}
