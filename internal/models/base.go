package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Base carries the server-assigned identifier and timestamps shared by
// every document.
type Base struct {
	ID        primitive.ObjectID `json:"id"      bson:"_id,omitempty"`
	CreatedAt time.Time          `json:"created" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated" bson:"updated_at"`
}

// Touch stamps the document for insert or update.
func (b *Base) Touch(now time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}
