package models

// JewelleryStatus is the stock state shown on the product card.
type JewelleryStatus string

const (
	JewelleryAvailable  JewelleryStatus = "Available"
	JewelleryOutOfStock JewelleryStatus = "Out of Stock"
	JewelleryComingSoon JewelleryStatus = "Coming Soon"
)

// Valid reports whether s is one of the known stock states.
func (s JewelleryStatus) Valid() bool {
	switch s {
	case JewelleryAvailable, JewelleryOutOfStock, JewelleryComingSoon:
		return true
	}
	return false
}

// JewelleryModel is a catalogue item. The client form caps OtherImages
// at 5; the server stores whatever it is given.
type JewelleryModel struct {
	Base          `bson:",inline"`
	Name          string          `json:"name"           bson:"name"`
	Price         float64         `json:"price"          bson:"price"`
	DiscountPrice float64         `json:"discount_price" bson:"discount_price"`
	Status        JewelleryStatus `json:"status"         bson:"status"`
	Image         string          `json:"image"          bson:"image"`
	OtherImages   []string        `json:"other_images"   bson:"other_images"`
}
