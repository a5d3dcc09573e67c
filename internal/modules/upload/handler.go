package upload

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/yaritu/core/internal/modules/storage"
	"github.com/yaritu/core/internal/pkg/response"
	"go.uber.org/zap"
)

// Handler receives multipart uploads and forwards them to the configured
// object-storage backend. store is nil when no backend is configured.
type Handler struct {
	store    storage.ObjectStorage
	maxBytes int64
	logger   *zap.Logger
}

func NewHandler(store storage.ObjectStorage, maxBytes int64, logger *zap.Logger) *Handler {
	return &Handler{store: store, maxBytes: maxBytes, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/upload", authMW, h.upload)
}

// POST /upload — multipart body with "file" (required) and "folder"
// (optional). The size ceiling is checked before any bytes are streamed
// to the backend; an oversized payload never reaches storage.
func (h *Handler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	if h.maxBytes > 0 && fileHeader.Size > h.maxBytes {
		response.PayloadTooLarge(c, fmt.Sprintf("file exceeds the %d MB upload limit", h.maxBytes>>20))
		return
	}

	if h.store == nil {
		response.InternalError(c, storage.ErrNotConfigured)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "could not read file")
		return
	}
	defer file.Close()

	url, err := h.store.Put(c.Request.Context(), storage.Object{
		Folder:      c.PostForm("folder"),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
		Size:        fileHeader.Size,
	})
	if err != nil {
		h.logger.Error("upload failed",
			zap.String("provider", h.store.Provider()),
			zap.String("filename", fileHeader.Filename),
			zap.Error(err),
		)
		response.BadGateway(c, "upload to storage backend failed")
		return
	}

	response.OK(c, gin.H{"url": url, "provider": h.store.Provider()})
}
