package models

// Booking is a repair or service appointment request.
type Booking struct {
	Name              string  `bson:"name" json:"name" validate:"required"`
	Email             string  `bson:"email" json:"email" validate:"required,email"`
	Phone             *string `bson:"phone" json:"phone"`
	DeviceType        string  `bson:"device_type" json:"device_type" validate:"required"`
	IssueDescription  string  `bson:"issue_description" json:"issue_description" validate:"required"`
	ImageBase64       *string `bson:"image_base64" json:"image_base64"`
	PreferredDatetime *string `bson:"preferred_datetime" json:"preferred_datetime"`
	PaymentOption     string  `bson:"payment_option" json:"payment_option"`
}

func NewBooking() *Booking {
	return &Booking{PaymentOption: "pay_on_service"}
}

func (*Booking) CollectionName() string { return "booking" }
