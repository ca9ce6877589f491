package http

import (
	"github.com/dimko/miniblog/internal/auth"
	"github.com/dimko/miniblog/internal/database"
)

// RouterConfig contains all dependencies and configuration needed to create
// the HTTP router. This replaces a long parameter list in NewRouter.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database

	// Authentication
	AuthService    *auth.Service
	AuthMiddleware *auth.Middleware

	// Usernames allowed to call the dev maintenance endpoints
	Maintainers []string

	// Application info
	Version string
}
