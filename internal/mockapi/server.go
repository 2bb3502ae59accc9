// internal/mockapi/server.go
package mockapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/config"
)

// Server is the in-memory development backend. It implements the resource
// contracts the storefront stores depend on without any external services.
type Server struct {
	config     *config.Config
	log        *logrus.Logger
	gin        *gin.Engine
	httpServer *http.Server
	data       *dataset
}

// NewServer creates a development backend with a seeded dataset
func NewServer(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	data, err := newDataset(cfg.MockAPI.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to seed dataset: %w", err)
	}

	s := &Server{
		config: cfg,
		log:    logger,
		data:   data,
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	s.gin = gin.New()
	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// Handler exposes the underlying handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.gin
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.MockAPI.Port,
		Handler:      s.gin,
		ReadTimeout:  s.config.MockAPI.ReadTimeout,
		WriteTimeout: s.config.MockAPI.WriteTimeout,
		IdleTimeout:  s.config.MockAPI.IdleTimeout,
	}

	s.log.Infof("Mock API listening on port %s", s.config.MockAPI.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	return nil
}

// setupMiddleware configures all middleware for the server
func (s *Server) setupMiddleware() {
	s.gin.Use(gin.Recovery())
	s.gin.Use(requestID())
	s.gin.Use(requestLogger(s.log))
}

// setupRoutes configures all routes for the server
func (s *Server) setupRoutes() {
	s.gin.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
			"version":   s.config.App.Version,
		})
	})

	apiGroup := s.gin.Group("/api")

	auth := apiGroup.Group("/auth")
	{
		auth.POST("/login", s.login)
		auth.POST("/register", s.register)
	}

	products := apiGroup.Group("/products")
	{
		products.GET("", s.listProducts)
		products.GET("/search", s.searchProducts)
		products.GET("/categories", s.listCategories)
		products.GET("/related/:categoryId", s.relatedProducts)
		products.GET("/:id", s.getProduct)
	}

	cart := apiGroup.Group("/cart")
	cart.Use(authRequired(s.config))
	{
		cart.GET("", s.getCart)
		cart.POST("/add", s.addToCart)
		cart.PUT("/update", s.updateCartItem)
		cart.DELETE("/remove/:id", s.removeCartItem)
		cart.DELETE("/clear", s.clearCart)
	}

	admin := apiGroup.Group("/admin")
	admin.Use(authRequired(s.config), adminRequired())
	{
		admin.GET("/dashboard", s.adminDashboard)
		admin.GET("/products", s.adminListProducts)
		admin.POST("/products", s.adminCreateProduct)
		admin.PUT("/products/:id", s.adminUpdateProduct)
		admin.DELETE("/products/:id", s.adminDeleteProduct)
		admin.GET("/orders", s.adminListOrders)
		admin.PUT("/orders/:id/status", s.adminSetOrderStatus)
		admin.GET("/users", s.adminListUsers)
		admin.PUT("/users/:id/status", s.adminSetUserBlocked)
		admin.GET("/categories", s.adminListCategories)
		admin.POST("/categories", s.adminCreateCategory)
		admin.PUT("/categories/:id", s.adminUpdateCategory)
		admin.DELETE("/categories/:id", s.adminDeleteCategory)
	}
}
