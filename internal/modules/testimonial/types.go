package testimonial

import (
	"context"
	"errors"

	"github.com/yaritu/core/internal/models"
)

// ErrNotFound is returned when no testimonial matches the identifier.
var ErrNotFound = errors.New("testimonial not found")

// CreateTestimonialDTO is the body for POST; all URL fields are accepted
// as-is with no check that they resolve to stored content.
type CreateTestimonialDTO struct {
	Name   string `json:"name"   binding:"required"`
	Quote  string `json:"quote"  binding:"required"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Avatar string `json:"avatar"`
}

// UpdateTestimonialDTO is the body for PUT; zero values clear nothing,
// the whole document is replaced field-by-field like the create call.
type UpdateTestimonialDTO struct {
	Name   string `json:"name"   binding:"required"`
	Quote  string `json:"quote"  binding:"required"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Avatar string `json:"avatar"`
}

// Store persists testimonials.
type Store interface {
	List(ctx context.Context) ([]models.TestimonialModel, error)
	Create(ctx context.Context, m *models.TestimonialModel) error
	Update(ctx context.Context, id string, dto *UpdateTestimonialDTO) (*models.TestimonialModel, error)
	Delete(ctx context.Context, id string) error
}
