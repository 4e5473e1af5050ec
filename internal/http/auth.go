package http

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvoskres/postroom/internal/audit"
	"github.com/mvoskres/postroom/internal/auth"
	"github.com/mvoskres/postroom/internal/entities"
	"github.com/mvoskres/postroom/internal/session"
)

// AuthController exposes the authentication API: register, login and
// current-user lookup. The session token travels in the session cookie; the
// controller threads it into the auth service and writes back whatever
// token the binding ends up under.
type AuthController struct {
	service  *auth.Service
	sessions *session.Manager
	auditor  *audit.Service
}

// NewAuthController creates a new authentication controller.
func NewAuthController(service *auth.Service, sessions *session.Manager, auditor *audit.Service) *AuthController {
	return &AuthController{
		service:  service,
		sessions: sessions,
		auditor:  auditor,
	}
}

// RegisterRoutes registers authentication routes on the router.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.POST("/register", ac.Register)
	api.POST("/login", ac.Login)
	api.GET("/me", ac.Me)
}

// sessionToken extracts the caller's session token from the cookie, empty
// when the caller has no session yet.
func (ac *AuthController) sessionToken(c *gin.Context) string {
	cookie, err := c.Request.Cookie(ac.sessions.Cookie.Name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Register handles POST /api/register.
func (ac *AuthController) Register(c *gin.Context) {
	ac.handleCredentials(c, "register", ac.service.Register)
}

// Login handles POST /api/login.
func (ac *AuthController) Login(c *gin.Context) {
	ac.handleCredentials(c, "login", ac.service.Login)
}

// handleCredentials runs the shared register/login request cycle: decode,
// invoke, audit, bind cookie, encode.
func (ac *AuthController) handleCredentials(
	c *gin.Context,
	action string,
	op func(ctx context.Context, creds auth.Credentials, token string) (auth.Result, string, error),
) {
	var creds auth.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, token, err := op(c.Request.Context(), creds, ac.sessionToken(c))
	if err != nil {
		ac.auditor.LogAuth(action, creds.Username, c.ClientIP(), 0, entities.AuditStatusFailed, err.Error())
		log.Printf("%s failed for %q: %v", action, creds.Username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	if !result.OK() {
		ac.auditor.LogAuth(action, creds.Username, c.ClientIP(), 0, entities.AuditStatusRejected, result.Errors[0].Message)
		c.JSON(http.StatusOK, result)
		return
	}

	ac.auditor.LogAuth(action, creds.Username, c.ClientIP(), result.User.ID, entities.AuditStatusSuccess, "")
	ac.sessions.WriteCookie(c.Writer, token)
	c.JSON(http.StatusOK, result)
}

// Me handles GET /api/me. An anonymous caller gets {"user": null} rather
// than an error.
func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.service.Me(c.Request.Context(), ac.sessionToken(c))
	if err != nil {
		log.Printf("me lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
