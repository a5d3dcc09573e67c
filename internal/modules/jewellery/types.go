package jewellery

import (
	"context"
	"errors"

	"github.com/yaritu/core/internal/models"
)

// ErrNotFound is returned when no item matches the identifier.
var ErrNotFound = errors.New("jewellery item not found")

// ItemDTO is the body for both create and update. OtherImages is capped
// at 5 in the admin form only; the server accepts whatever arrives.
type ItemDTO struct {
	Name          string   `json:"name"  binding:"required"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	DiscountPrice float64  `json:"discount_price"`
	Status        string   `json:"status"`
	Image         string   `json:"image"`
	OtherImages   []string `json:"other_images"`
}

// Store persists jewellery items.
type Store interface {
	List(ctx context.Context) ([]models.JewelleryModel, error)
	Create(ctx context.Context, m *models.JewelleryModel) error
	Update(ctx context.Context, id string, dto *ItemDTO) (*models.JewelleryModel, error)
	Delete(ctx context.Context, id string) error
}
