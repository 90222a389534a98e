package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/SayubShakya/recipenest-client/internal/types"
	"github.com/SayubShakya/recipenest-client/internal/view"
)

func runUsers(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: recipenest users <list|chefs|show|status|profile|reset-password> [options]")
	}
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("users list", flag.ExitOnError)
		page := fs.Int("page", 1, "page number")
		size := fs.Int("size", a.cfg.PageSize, "page size")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		lv := view.NewListView(*size, a.users.List)
		if err := lv.Fetch(ctx); err != nil {
			return err
		}
		lv.SetPage(*page)
		if err := printUsers(lv.PageItems()); err != nil {
			return err
		}
		printPageFooter(lv.Page(), lv.TotalPages())
		return nil

	case "chefs":
		fs := flag.NewFlagSet("users chefs", flag.ExitOnError)
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		chefs, err := a.users.Chefs(ctx)
		if err != nil {
			return err
		}
		return printUsers(chefs)

	case "show":
		fs := flag.NewFlagSet("users show", flag.ExitOnError)
		idArg := fs.String("id", "", "user id")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		id, err := parseID(*idArg)
		if err != nil {
			return err
		}
		u, err := a.users.Get(ctx, id)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintf(w, "ID\t%s\n", u.ID)
		fmt.Fprintf(w, "Name\t%s\n", u.FullName())
		fmt.Fprintf(w, "Email\t%s\n", u.Email)
		fmt.Fprintf(w, "Phone\t%s\n", u.PhoneNumber)
		fmt.Fprintf(w, "Role\t%s\n", types.ReadableString(u.Role))
		fmt.Fprintf(w, "Active\t%t\n", u.IsActive)
		if u.About != "" {
			fmt.Fprintf(w, "About\t%s\n", u.About)
		}
		return w.Flush()

	case "status":
		fs := flag.NewFlagSet("users status", flag.ExitOnError)
		idArg := fs.String("id", "", "user id")
		activate := fs.Bool("activate", false, "activate the user")
		deactivate := fs.Bool("deactivate", false, "deactivate the user")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *activate == *deactivate {
			return fmt.Errorf("pass exactly one of -activate or -deactivate")
		}
		id, err := parseID(*idArg)
		if err != nil {
			return err
		}
		u, err := a.users.Get(ctx, id)
		if err != nil {
			return err
		}
		if ok, reason := view.CanToggleUserStatus(*u, *activate); !ok {
			return fmt.Errorf("%s", reason)
		}
		if err := a.users.ToggleStatus(ctx, id, *activate); err != nil {
			return err
		}
		if *activate {
			fmt.Println("User activated")
		} else {
			fmt.Println("User deactivated")
		}
		return nil

	case "profile":
		fs := flag.NewFlagSet("users profile", flag.ExitOnError)
		first := fs.String("first-name", "", "first name")
		last := fs.String("last-name", "", "last name")
		phone := fs.String("phone", "", "phone number")
		about := fs.String("about", "", "about text")
		image := fs.String("image", "", "image URL")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		payload := types.ProfileUpdatePayload{
			FirstName:   *first,
			LastName:    *last,
			PhoneNumber: *phone,
			About:       *about,
			ImageURL:    *image,
		}
		if err := a.users.UpdateProfile(ctx, payload); err != nil {
			return err
		}
		fmt.Println("Profile updated")
		return nil

	case "reset-password":
		fs := flag.NewFlagSet("users reset-password", flag.ExitOnError)
		idArg := fs.String("id", "", "user id")
		current := fs.String("current", "", "current password")
		newPassword := fs.String("new", "", "new password")
		confirm := fs.String("confirm", "", "confirm new password")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		id, err := parseID(*idArg)
		if err != nil {
			return err
		}
		form := view.ResetPasswordForm{
			CurrentPassword: *current,
			NewPassword:     *newPassword,
			ConfirmPassword: *confirm,
		}
		if err := form.Validate(); err != nil {
			return err
		}
		if err := a.users.ResetPassword(ctx, id, *newPassword); err != nil {
			return err
		}
		fmt.Println("Password updated")
		return nil
	}
	return fmt.Errorf("unknown users subcommand: %s", args[0])
}

func printUsers(users []types.User) error {
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tACTIVE")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", u.ID, u.FullName(), u.Email, types.ReadableString(u.Role), u.IsActive)
	}
	return w.Flush()
}
