package contact

import (
	"github.com/gin-gonic/gin"
	"github.com/yaritu/core/internal/models"
	"github.com/yaritu/core/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	store    Store
	notifier Notifier
	logger   *zap.Logger
}

func NewHandler(store Store, notifier Notifier, logger *zap.Logger) *Handler {
	return &Handler{store: store, notifier: notifier, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/contacts")
	g.GET("", authMW, h.list)
	g.POST("", h.create)
}

// GET /contacts — admin listing, newest first.
func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// POST /contacts — persistence is the authoritative success signal; the
// email notification afterwards is best-effort and must never change the
// response already promised to the caller.
func (h *Handler) create(c *gin.Context) {
	var dto CreateContactDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	m := &models.ContactModel{
		FullName: dto.FullName,
		Email:    dto.Email,
		Phone:    dto.Phone,
		Subject:  dto.Subject,
		Message:  dto.Message,
	}
	if err := h.store.Create(c.Request.Context(), m); err != nil {
		response.InternalError(c, err)
		return
	}

	go h.notify(m)

	response.CreatedMsg(c, "thanks for reaching out, we will get back to you soon")
}

func (h *Handler) notify(m *models.ContactModel) {
	if h.notifier == nil {
		return
	}
	if err := h.notifier.NotifyContact(m); err != nil {
		h.logger.Warn("contact notification failed",
			zap.String("email", m.Email),
			zap.Error(err),
		)
	}
}
