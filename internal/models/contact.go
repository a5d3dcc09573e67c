package models

// ContactModel is a contact-form submission. Submissions are append-only:
// the app never mutates or deletes them.
type ContactModel struct {
	Base     `bson:",inline"`
	FullName string `json:"full_name" bson:"full_name"`
	Email    string `json:"email"     bson:"email"`
	Phone    string `json:"phone"     bson:"phone"`
	Subject  string `json:"subject"   bson:"subject"`
	Message  string `json:"message"   bson:"message"`
}
