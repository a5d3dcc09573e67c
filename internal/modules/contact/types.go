package contact

import (
	"context"

	"github.com/yaritu/core/internal/models"
)

// CreateContactDTO is the request body for POST /contacts.
type CreateContactDTO struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email"     binding:"required,email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Message  string `json:"message"   binding:"required"`
}

// Store persists contact submissions.
type Store interface {
	Create(ctx context.Context, m *models.ContactModel) error
	List(ctx context.Context) ([]models.ContactModel, error)
}

// Notifier delivers the best-effort new-enquiry notification.
type Notifier interface {
	NotifyContact(m *models.ContactModel) error
}
