package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dimko/miniblog/internal/auth"
)

// RegisterRequest is the JSON payload for account registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthController handles registration and the OAuth2 password login flow.
type AuthController struct {
	service *auth.Service
}

// NewAuthController creates a new authentication controller.
func NewAuthController(service *auth.Service) *AuthController {
	return &AuthController{service: service}
}

// Register creates a user and returns an access token.
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "username and password are required")
		return
	}

	user, err := ac.service.Register(req.Username, req.Password)
	if err != nil {
		respondInternalError(c, err, "register")
		return
	}

	token, err := ac.service.Tokens().Issue(user.Username)
	if err != nil {
		respondInternalError(c, err, "issue token")
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Login implements the OAuth2 password flow: form-encoded username/password
// in, bearer token out. Failures are uniform 401s regardless of whether the
// user exists.
func (ac *AuthController) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := ac.service.Authenticate(username, password)
	if err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Incorrect username or password"})
		return
	}

	token, err := ac.service.Tokens().Issue(user.Username)
	if err != nil {
		respondInternalError(c, err, "issue token")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}
