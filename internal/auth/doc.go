// Package auth implements the authentication core: password hashing,
// bearer token issuance/verification, and request-scoped user resolution.
//
// Passwords are stored as salted PBKDF2-SHA256 digests. Access tokens are
// stateless HS256 JWTs carrying the username as subject; expiry is the only
// termination mechanism, there is no server-side revocation.
//
// # Usage
//
// Initialize in entrypoint:
//
//	service := auth.NewService(usersRepo, cfg.Auth)
//	middleware := auth.NewMiddleware(service)
//	router.POST("/post", middleware.RequireUser(), handler)
//
// Extract the caller in handlers:
//
//	user := auth.CurrentUser(c)
//
// Failure semantics: bad login credentials surface as ErrUnauthenticated,
// any bearer-token failure (bad signature, malformed, expired, subject no
// longer resolvable) surfaces as ErrUnauthorized. Neither error reveals
// which underlying check rejected the request.
package auth
