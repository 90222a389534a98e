package main

import (
	"context"
	"flag"
	"fmt"
	"sort"

	"github.com/SayubShakya/recipenest-client/internal/view"
)

func runRecipes(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: recipenest recipes <list|show|add|update|delete> [options]")
	}
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("recipes list", flag.ExitOnError)
		page := fs.Int("page", 1, "page number")
		size := fs.Int("size", a.cfg.PageSize, "page size")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		lv := view.NewListView(*size, a.recipes.List)
		if err := lv.Fetch(ctx); err != nil {
			return err
		}
		lv.SetPage(*page)
		w := newTable()
		fmt.Fprintln(w, "ID\tTITLE\tCUISINE\tCATEGORY\tDIETARY")
		for _, r := range lv.PageItems() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Title, r.Cuisine, r.Category, r.Dietary)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		printPageFooter(lv.Page(), lv.TotalPages())
		return nil

	case "show":
		fs := flag.NewFlagSet("recipes show", flag.ExitOnError)
		idArg := fs.String("id", "", "recipe id")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		id, err := parseID(*idArg)
		if err != nil {
			return err
		}
		r, err := a.recipes.Get(ctx, id)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintf(w, "ID\t%s\n", r.ID)
		fmt.Fprintf(w, "Title\t%s\n", r.Title)
		fmt.Fprintf(w, "Description\t%s\n", r.Description)
		fmt.Fprintf(w, "Ingredients\t%s\n", r.Ingredients)
		fmt.Fprintf(w, "Steps\t%s\n", r.Recipe)
		fmt.Fprintf(w, "Cuisine\t%s\n", r.Cuisine)
		if r.Category != "" {
			fmt.Fprintf(w, "Category\t%s\n", r.Category)
		}
		if r.Dietary != "" {
			fmt.Fprintf(w, "Dietary\t%s\n", r.Dietary)
		}
		return w.Flush()

	case "add", "update":
		editing := args[0] == "update"
		fs := flag.NewFlagSet("recipes "+args[0], flag.ExitOnError)
		idArg := fs.String("id", "", "recipe id (update only)")
		title := fs.String("title", "", "recipe title")
		description := fs.String("description", "", "short description")
		ingredients := fs.String("ingredients", "", "ingredient list")
		steps := fs.String("steps", "", "preparation steps")
		cuisineArg := fs.String("cuisine", "", "cuisine id")
		image := fs.String("image", "", "image URL")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		cuisineID, err := parseID(*cuisineArg)
		if err != nil {
			return err
		}
		form := view.RecipeForm{
			Title:       *title,
			Description: *description,
			Ingredients: *ingredients,
			Recipe:      *steps,
			CuisineID:   cuisineID,
			ImageURL:    *image,
		}
		if errs := form.Validate(); len(errs) > 0 {
			fields := make([]string, 0, len(errs))
			for field := range errs {
				fields = append(fields, field)
			}
			sort.Strings(fields)
			for _, field := range fields {
				fmt.Printf("%s: %s\n", field, errs[field])
			}
			return fmt.Errorf("recipe form is invalid")
		}

		if editing {
			id, err := parseID(*idArg)
			if err != nil {
				return err
			}
			if err := a.recipes.Update(ctx, form.Payload(id)); err != nil {
				return err
			}
			fmt.Println("Recipe updated")
			return nil
		}
		if err := a.recipes.Create(ctx, form.Payload(0)); err != nil {
			return err
		}
		fmt.Println("Recipe created")
		return nil

	case "delete":
		fs := flag.NewFlagSet("recipes delete", flag.ExitOnError)
		idArg := fs.String("id", "", "recipe id")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		id, err := parseID(*idArg)
		if err != nil {
			return err
		}
		if err := a.recipes.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Println("Recipe deleted")
		return nil
	}
	return fmt.Errorf("unknown recipes subcommand: %s", args[0])
}
