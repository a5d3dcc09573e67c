// Package video implements the trending and celebrity video catalogues.
// The two features share one model and one code path; only the backing
// collection differs.
package video

import (
	"context"
	"errors"

	"github.com/yaritu/core/internal/models"
)

// ErrNotFound is returned when no video matches the identifier.
var ErrNotFound = errors.New("video not found")

// VideoDTO is the body for both create and update.
type VideoDTO struct {
	Title string `json:"title" binding:"required"`
	URL   string `json:"url"   binding:"required"`
}

// Store persists one video collection.
type Store interface {
	List(ctx context.Context) ([]models.VideoModel, error)
	Create(ctx context.Context, m *models.VideoModel) error
	Update(ctx context.Context, id string, dto *VideoDTO) (*models.VideoModel, error)
	Delete(ctx context.Context, id string) error
}
