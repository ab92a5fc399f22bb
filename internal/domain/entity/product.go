package entity

// Product is a catalog item offered for sale or rental.
// Quantity is the stock count and never goes below zero.
type Product struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Brand       string `db:"brand" json:"brand"`
	Model       string `db:"model" json:"model"`
	Description string `db:"description" json:"description"`
	Status      string `db:"status" json:"status"`
	Quantity    int    `db:"quantity" json:"quantity"`
	CategoryID  int64  `db:"category_id" json:"categoryId"`
	// Attributes is an opaque key/value blob serialized as JSON text.
	Attributes string `db:"attributes" json:"attributes,omitempty"`

	Category *Category      `db:"-" json:"category,omitempty"`
	Media    []ProductMedia `db:"-" json:"media,omitempty"`
}

// ProductMedia is one attachment (image, manual) belonging to a product.
type ProductMedia struct {
	ID        int64  `db:"id" json:"id"`
	ProductID int64  `db:"product_id" json:"productId"`
	URL       string `db:"url" json:"url"`
	Kind      string `db:"kind" json:"kind"`
}

func NewProduct(name, brand, model string, categoryID int64, quantity int) (*Product, error) {
	p := &Product{
		Name:       name,
		Brand:      brand,
		Model:      model,
		CategoryID: categoryID,
		Quantity:   quantity,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrNameIsRequired
	}
	if p.Quantity < 0 {
		return ErrQuantityIsNegative
	}
	if p.CategoryID <= 0 {
		return ErrCategoryIsRequired
	}
	return nil
}

// DecrementQuantity takes one unit of stock, flooring at zero.
func (p *Product) DecrementQuantity() {
	if p.Quantity > 0 {
		p.Quantity--
	}
}
