package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/SayubShakya/recipenest-client/config"
	"github.com/SayubShakya/recipenest-client/internal/devserver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	srv, err := devserver.New(cfg)
	if err != nil {
		log.Fatalf("Server init error: %v", err)
	}

	// Start carries its own failure path, so run it off the main
	// goroutine and collect the result here.
	errChan := make(chan error, 1)

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)

	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for either the server to fall over or the OS to ask us to stop.
	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
