package models

type ContactMessage struct {
	Name    string  `bson:"name" json:"name" validate:"required"`
	Email   string  `bson:"email" json:"email" validate:"required,email"`
	Phone   *string `bson:"phone" json:"phone"`
	Message string  `bson:"message" json:"message" validate:"required"`
}

func NewContactMessage() *ContactMessage {
	return &ContactMessage{}
}

func (*ContactMessage) CollectionName() string { return "contactmessage" }
