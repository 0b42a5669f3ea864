package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
)

// SessionHandler trades Basic credentials for a bearer token, so API
// clients do not have to resend the password on every call.
type SessionHandler struct {
	config *config.Config
}

func NewSessionHandler(cfg *config.Config) *SessionHandler {
	return &SessionHandler{config: cfg}
}

func (h *SessionHandler) Create(c *gin.Context) {
	user, pass, ok := c.Request.BasicAuth()
	if !ok || !middleware.CheckAdminCredentials(h.config, user, pass) {
		c.Header("WWW-Authenticate", middleware.AdminRealm)
		httperr.Unauthorized(c, "invalid_credentials", "Invalid username or password.")
		return
	}

	token, exp, err := middleware.IssueAdminToken(h.config, user, time.Now())
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not create session.")
		return
	}

	httpresp.Done(c, gin.H{
		"token":      token,
		"token_type": "Bearer",
		"expires_at": exp.UTC(),
	})
}
