package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/SayubShakya/recipenest-client/internal/types"
	"github.com/SayubShakya/recipenest-client/internal/view"
)

func runLogin(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	flow := view.NewLoginFlow(a.auth)
	ctx := context.Background()
	if err := flow.Submit(ctx, *email, *password); err != nil {
		return err
	}
	if flow.State() == view.StateLoginFailed {
		return fmt.Errorf("%s", flow.Err())
	}

	route, err := flow.Resolve(ctx)
	if err != nil {
		return err
	}
	user, err := a.auth.CurrentUser()
	if err == nil && user != nil {
		fmt.Printf("Signed in as %s (%s)\n", user.Name, types.ReadableString(user.Role))
	} else {
		fmt.Println("Signed in")
	}
	if route == "" {
		fmt.Println("No dashboard is available for this role")
		return nil
	}
	fmt.Printf("Dashboard: %s\n", route)
	return nil
}

func runLogout(args []string) error {
	fs := flag.NewFlagSet("logout", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.auth.Logout(); err != nil {
		return err
	}
	fmt.Println("Signed out")
	return nil
}

func runRegister(args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	first := fs.String("first-name", "", "first name")
	last := fs.String("last-name", "", "last name")
	phone := fs.String("phone", "", "phone number (digits only)")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	roleID := fs.String("role", "", "role id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := parseID(*roleID)
	if err != nil {
		return err
	}
	form := view.RegisterForm{
		FirstName:       *first,
		LastName:        *last,
		PhoneNumber:     *phone,
		Email:           *email,
		Password:        *password,
		ConfirmPassword: *password,
		RoleID:          id,
	}
	if err := form.Validate(); err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.auth.Register(context.Background(), form.Payload()); err != nil {
		return err
	}
	fmt.Println("Account created, you can sign in now")
	return nil
}

func runWhoami(args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ExitOnError)
	remote := fs.Bool("remote", false, "verify the session against the server")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	var user *types.AuthorizedUser
	if *remote {
		user, err = a.auth.Authorized(context.Background())
	} else {
		user, err = a.auth.CurrentUser()
	}
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Println("Not signed in")
		return nil
	}

	w := newTable()
	fmt.Fprintf(w, "ID\t%s\n", user.ID)
	fmt.Fprintf(w, "Name\t%s\n", user.Name)
	fmt.Fprintf(w, "Email\t%s\n", user.Email)
	fmt.Fprintf(w, "Role\t%s\n", types.ReadableString(user.Role))
	if err := w.Flush(); err != nil {
		return err
	}

	if s, err := a.store.Load(); err == nil && s.Expired(time.Now()) {
		fmt.Println("Session token has expired, sign in again with `recipenest login`")
	}
	return nil
}
