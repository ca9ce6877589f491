package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dimko/miniblog/internal/entities"
)

// ContextKeyUser is the gin context key holding the resolved user.
const ContextKeyUser = "auth_user"

// Middleware guards protected routes by resolving the request's bearer token.
type Middleware struct {
	service *Service
}

// NewMiddleware creates authentication middleware backed by the service.
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireUser authenticates the request and stores the resolved user in the
// context. A missing header, a malformed scheme, or any token verification
// failure aborts the request with 401 and a WWW-Authenticate hint.
func (m *Middleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c)
			return
		}

		user, err := m.service.ResolveUser(raw)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// RequireMaintainer gates maintenance endpoints to an allowlist of usernames.
// It must run after RequireUser; an authenticated caller outside the list is
// rejected with 403.
func (m *Middleware) RequireMaintainer(maintainers []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(maintainers))
	for _, name := range maintainers {
		allowed[name] = true
	}

	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortUnauthorized(c)
			return
		}
		if !allowed[user.Username] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "forbidden",
			})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved for this request, or nil when the
// request did not pass RequireUser.
func CurrentUser(c *gin.Context) *entities.User {
	if v, exists := c.Get(ContextKeyUser); exists {
		if user, ok := v.(*entities.User); ok {
			return user
		}
	}
	return nil
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": ErrUnauthorized.Error(),
	})
}
