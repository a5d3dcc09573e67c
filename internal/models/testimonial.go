package models

// TestimonialModel is a customer quote shown on the landing page.
// Avatar points at an externally stored image; deleting the testimonial
// does not delete the object it references.
type TestimonialModel struct {
	Base   `bson:",inline"`
	Name   string `json:"name"   bson:"name"`
	Quote  string `json:"quote"  bson:"quote"`
	Rating int    `json:"rating" bson:"rating"`
	Avatar string `json:"avatar" bson:"avatar"`
}
