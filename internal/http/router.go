package http

import (
	"github.com/gin-gonic/gin"

	"github.com/dimko/miniblog/internal/database/comments"
	"github.com/dimko/miniblog/internal/database/posts"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	postsRepo := posts.NewRepository(cfg.Database.DB)
	commentsRepo := comments.NewRepository(cfg.Database.DB)

	authController := NewAuthController(cfg.AuthService)
	postsController := NewPostsController(postsRepo, commentsRepo)
	commentsController := NewCommentsController(postsRepo, commentsRepo)
	healthController := NewHealthController(cfg.Database, cfg.Version)
	devController := NewDevController(postsRepo, commentsRepo)

	requireUser := cfg.AuthMiddleware.RequireUser()
	requireMaintainer := cfg.AuthMiddleware.RequireMaintainer(cfg.Maintainers)

	// Auth
	router.POST("/register", authController.Register)
	router.POST("/token", authController.Login)

	// Writes require an authenticated user
	router.POST("/post", requireUser, postsController.Create)
	router.POST("/comment", requireUser, commentsController.Create)

	// Reads are public
	router.GET("/posts", postsController.List)
	router.GET("/posts/:id", postsController.Get)
	router.GET("/post/:id/comments", commentsController.ListForPost)

	// Dev utilities
	router.GET("/health", healthController.Status)
	router.POST("/_dev/reset", requireUser, requireMaintainer, devController.Reset)

	return router
}
