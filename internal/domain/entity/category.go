package entity

// Category is the parent of many products. The store rejects deleting a
// category that still has referencing products.
type Category struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description,omitempty"`
	ImageURL    string `db:"image_url" json:"imageUrl,omitempty"`
}

func NewCategory(name, description, imageURL string) (*Category, error) {
	if name == "" {
		return nil, ErrNameIsRequired
	}
	return &Category{Name: name, Description: description, ImageURL: imageURL}, nil
}
