package chat

import (
	"github.com/gin-gonic/gin"
	"github.com/yaritu/core/internal/pkg/response"
	"go.uber.org/zap"
)

type chatDTO struct {
	Message string `json:"message" binding:"required"`
}

// Handler answers chat messages. completer may be nil, in which case
// every reply comes from the canned set.
type Handler struct {
	completer Completer
	logger    *zap.Logger
}

func NewHandler(completer Completer, logger *zap.Logger) *Handler {
	return &Handler{completer: completer, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.chat)
}

// POST /chat — stateless request/response. Any upstream failure degrades
// to a canned reply rather than an error.
func (h *Handler) chat(c *gin.Context) {
	var dto chatDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "message is required")
		return
	}

	if h.completer != nil {
		reply, err := h.completer.Complete(c.Request.Context(), dto.Message)
		if err == nil {
			response.OK(c, gin.H{"reply": reply})
			return
		}
		h.logger.Warn("chat completion failed, falling back to canned reply", zap.Error(err))
	}

	response.OK(c, gin.H{"reply": CannedReply(dto.Message)})
}
