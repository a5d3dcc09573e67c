package jewellery

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yaritu/core/internal/models"
	"github.com/yaritu/core/internal/pkg/response"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/jewellery")
	g.GET("", h.list)
	g.POST("", authMW, h.create)
	g.PUT("/:id", authMW, h.update)
	g.DELETE("/:id", authMW, h.delete)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

func (h *Handler) create(c *gin.Context) {
	var dto ItemDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	status, err := resolveStatus(dto.Status)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m := &models.JewelleryModel{
		Name:          dto.Name,
		Price:         dto.Price,
		DiscountPrice: dto.DiscountPrice,
		Status:        status,
		Image:         dto.Image,
		OtherImages:   dto.OtherImages,
	}
	if err := h.store.Create(c.Request.Context(), m); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, m)
}

func (h *Handler) update(c *gin.Context) {
	var dto ItemDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	status, err := resolveStatus(dto.Status)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	dto.Status = string(status)
	m, err := h.store.Update(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "jewellery item not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, m)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "jewellery item not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func resolveStatus(raw string) (models.JewelleryStatus, error) {
	if raw == "" {
		return models.JewelleryAvailable, nil
	}
	status := models.JewelleryStatus(raw)
	if !status.Valid() {
		return "", errors.New("status must be one of: Available, Out of Stock, Coming Soon")
	}
	return status, nil
}
