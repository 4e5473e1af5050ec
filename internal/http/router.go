package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mvoskres/postroom/internal/audit"
	"github.com/mvoskres/postroom/internal/auth"
	"github.com/mvoskres/postroom/internal/database"
	"github.com/mvoskres/postroom/internal/session"
)

// RouterConfig carries everything the router needs, so wiring stays in one
// place and tests can assemble partial routers.
type RouterConfig struct {
	AuthService    *auth.Service
	SessionManager *session.Manager
	AuditService   *audit.Service
	DB             *database.Database
	Version        string

	// CSRFSecret enables CSRF protection when non-empty (32 bytes).
	CSRFSecret []byte
	// SecureCookies controls the Secure attribute on the CSRF cookie.
	SecureCookies bool
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(SecurityHeadersMiddleware())

	if len(cfg.CSRFSecret) > 0 {
		router.Use(CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	healthController := NewHealthController(cfg.DB, cfg.Version)
	router.GET("/health", healthController.Status)

	authController := NewAuthController(cfg.AuthService, cfg.SessionManager, cfg.AuditService)
	authController.RegisterRoutes(router)

	return router
}
