package models

// Product is a catalogue entry. It carries no identifier field, so documents
// read back from the store never expose their _id.
type Product struct {
	Title       string            `bson:"title" json:"title" validate:"required"`
	Description *string           `bson:"description" json:"description"`
	Price       *float64          `bson:"price" json:"price" validate:"required,gte=0"`
	Category    string            `bson:"category" json:"category" validate:"required"`
	InStock     bool              `bson:"in_stock" json:"in_stock"`
	StockQty    int               `bson:"stock_qty" json:"stock_qty" validate:"gte=0"`
	Images      []string          `bson:"images" json:"images"`
	Specs       map[string]string `bson:"specs" json:"specs"`
	Tags        []string          `bson:"tags" json:"tags"`
}

func NewProduct() *Product {
	return &Product{InStock: true}
}

func (*Product) CollectionName() string { return "product" }

func (p *Product) Normalize() {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Specs == nil {
		p.Specs = map[string]string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}
