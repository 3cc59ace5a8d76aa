package models

// Order is stored exactly as submitted. Total is trusted and never compared
// with the item prices, and product IDs are not checked against the catalogue.
type Order struct {
	UserEmail     string      `bson:"user_email" json:"user_email" validate:"required,email"`
	Items         []OrderItem `bson:"items" json:"items" validate:"required,min=1,dive"`
	Total         *float64    `bson:"total" json:"total" validate:"required,gte=0"`
	Shipping      Address     `bson:"shipping" json:"shipping"`
	PaymentMethod string      `bson:"payment_method" json:"payment_method"` // card | cod | wallet | placeholder
	Status        string      `bson:"status" json:"status"`                 // pending | paid | shipped | completed | cancelled
}

type OrderItem struct {
	ProductID string   `bson:"product_id" json:"product_id" validate:"required"`
	Title     string   `bson:"title" json:"title" validate:"required"`
	Price     *float64 `bson:"price" json:"price" validate:"required"`
	Quantity  int      `bson:"quantity" json:"quantity" validate:"gte=1"`
	Image     *string  `bson:"image" json:"image"`
}

type Address struct {
	FullName   string  `bson:"full_name" json:"full_name" validate:"required"`
	Email      string  `bson:"email" json:"email" validate:"required,email"`
	Phone      *string `bson:"phone" json:"phone"`
	Line1      string  `bson:"line1" json:"line1" validate:"required"`
	Line2      *string `bson:"line2" json:"line2"`
	City       string  `bson:"city" json:"city" validate:"required"`
	State      string  `bson:"state" json:"state" validate:"required"`
	PostalCode string  `bson:"postal_code" json:"postal_code" validate:"required"`
	Country    string  `bson:"country" json:"country" validate:"required"`
}

func NewOrder() *Order {
	return &Order{
		PaymentMethod: "card",
		Status:        "pending",
	}
}

func (*Order) CollectionName() string { return "order" }

func (o *Order) Normalize() {
	if o.Items == nil {
		o.Items = []OrderItem{}
	}
}
