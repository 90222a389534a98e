package main

import (
	"fmt"
	"os"
)

var version = "dev"

var commands = map[string]func([]string) error{
	"login":     runLogin,
	"logout":    runLogout,
	"register":  runRegister,
	"whoami":    runWhoami,
	"dashboard": runDashboard,
	"cuisines":  runCuisines,
	"roles":     runRoles,
	"recipes":   runRecipes,
	"users":     runUsers,
	"favorites": runFavorites,
	"serve":     runServe,
}

func usage() {
	fmt.Fprintf(os.Stderr, `recipenest - RecipeNest CLI (version %s)

Usage:
  recipenest <command> [options]

Commands:
  login      Sign in and store the session token
  logout     Clear the stored session
  register   Create a new account
  whoami     Show the authenticated user
  dashboard  Show the role dashboard (recipes, favorites, filters)
  cuisines   Cuisine management (list, add, update, delete)
  roles      Role management (list, add, update, delete)
  recipes    Recipe management (list, show, add, update, delete)
  users      User management (list, chefs, show, status, profile, reset-password)
  favorites  Favorite recipes (list, toggle)
  serve      Run the local development API server

Run 'recipenest <command> -h' for command-specific help.
`, version)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	if cmd == "-h" || cmd == "--help" || cmd == "help" {
		usage()
		os.Exit(0)
	}
	if cmd == "-v" || cmd == "--version" || cmd == "version" {
		fmt.Println(version)
		os.Exit(0)
	}

	fn, ok := commands[cmd]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}

	if err := fn(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
