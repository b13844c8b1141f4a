package handler

import (
	"errors"
	"net/http"
	"time"

	"finlens/internal/auth"

	"github.com/gin-gonic/gin"
)

// LoginHandler exchanges the shared dashboard password for a short-lived
// bearer token. The password is checked server-side against a bcrypt hash;
// nothing is trusted from the browser session.
type LoginHandler struct {
	passwordHash string
	issuer       *auth.TokenIssuer
	now          func() time.Time
}

func NewLoginHandler(passwordHash string, issuer *auth.TokenIssuer) *LoginHandler {
	return &LoginHandler{
		passwordHash: passwordHash,
		issuer:       issuer,
		now:          time.Now,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login godoc
// @Summary      Exchange the dashboard password for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  loginRequest  true  "Shared dashboard password"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /auth/login [post]
func (h *LoginHandler) Login(c *gin.Context) {
	if h.passwordHash == "" || h.issuer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": auth.ErrAuthNotEnabled.Error()})
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "request body must be JSON with a password field"})
		return
	}

	if err := auth.CheckPassword(h.passwordHash, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) || errors.Is(err, auth.ErrMissingPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	token, expiry := h.issuer.Issue(h.now())
	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": expiry.UTC().Format(time.RFC3339),
	})
}
