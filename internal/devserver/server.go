// Package devserver is the local stand-in for the RecipeNest REST backend.
// It serves the same surface the production API exposes so the CLI works
// against localhost and the client packages can be integration-tested without
// external services.
package devserver

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SayubShakya/recipenest-client/config"
)

// Server is the dev backend: gin in front of a sqlite database.
type Server struct {
	db        *gorm.DB
	engine    *gin.Engine
	http      *http.Server
	jwtSecret string
	now       func() time.Time
}

// New opens (or creates) the database, migrates the schema, seeds baseline
// data, and builds the route table.
func New(cfg *config.Config) (*Server, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&Role{}, &User{}, &Cuisine{}, &Recipe{}, &Favorite{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	s := &Server{
		db:        db,
		jwtSecret: cfg.JWTSecret,
		now:       time.Now,
	}

	if err := s.seed(); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	s.engine = s.buildRouter()
	return s, nil
}

// Engine exposes the router for tests driving the server through httptest.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) buildRouter() *gin.Engine {
	router := gin.Default()
	router.Use(requestIDMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	rest := router.Group("/api/rest")

	// Unauthenticated auth endpoints
	auth := rest.Group("/auth")
	{
		auth.POST("/login", s.handleLogin)
		auth.POST("/register", s.handleRegister)
	}

	// Everything else requires a bearer token
	protected := rest.Group("")
	protected.Use(s.authMiddleware())
	{
		protected.GET("/auth/authorized", s.handleAuthorized)

		protected.GET("/cuisines", s.handleListCuisines)
		protected.POST("/cuisines", s.handleCreateCuisine)
		protected.PUT("/cuisines", s.handleUpdateCuisine)
		protected.DELETE("/cuisines", s.handleDeleteCuisine)

		protected.GET("/roles", s.handleListRoles)
		protected.POST("/roles", s.handleCreateRole)
		protected.PUT("/roles", s.handleUpdateRole)
		protected.DELETE("/roles", s.handleDeleteRole)

		protected.GET("/recipes", s.handleGetRecipes)
		protected.POST("/recipes", s.handleCreateRecipe)
		protected.PUT("/recipes", s.handleUpdateRecipe)
		protected.DELETE("/recipes", s.handleDeleteRecipe)

		protected.GET("/users", s.handleGetUsers)
		protected.GET("/users/chefs", s.handleListChefs)
		protected.POST("/users/status-toggle", s.handleStatusToggle)
		protected.PUT("/users/profile", s.handleUpdateProfile)
		protected.PUT("/users/reset-password", s.handleResetPassword)

		protected.GET("/favorites", s.handleListFavorites)
		protected.POST("/favorites", s.handleSetFavorite)
	}

	return router
}

// Start runs the server until the context is cancelled.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.engine,
	}
	log.Printf("Dev server listening on %s", addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Response helpers implementing the envelope convention: data for single
// records, data.items for collections, message for errors.

func dataResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

func itemsResponse(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"items": items}})
}

func errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
