package auth

import (
	"crypto/subtle"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yaritu/core/internal/config"
	"github.com/yaritu/core/internal/pkg/jwt"
	"github.com/yaritu/core/internal/pkg/response"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

type loginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Handler issues admin session tokens. There is a single admin account,
// configured at startup; no user collection exists.
type Handler struct {
	admin config.AdminConfig
}

func NewHandler(admin config.AdminConfig) *Handler {
	return &Handler{admin: admin}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.login)
}

func (h *Handler) login(c *gin.Context) {
	var dto loginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if h.admin.Username == "" || h.admin.PasswordHash == "" {
		response.BadRequest(c, "admin login is not configured")
		return
	}
	if subtle.ConstantTimeCompare([]byte(dto.Username), []byte(h.admin.Username)) != 1 {
		response.Unauthorized(c)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.admin.PasswordHash), []byte(dto.Password)); err != nil {
		response.Unauthorized(c)
		return
	}

	token, err := jwt.Sign(h.admin.Username, sessionTTL)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"token": token, "expires_in": int64(sessionTTL.Seconds())})
}
