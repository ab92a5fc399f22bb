package product

// Input

type ListInput struct {
	Search         string `json:"search"`
	Status         string `json:"status"`
	Brand          string `json:"brand"`
	CategoryID     int64  `json:"categoryId"`
	MinQuantity    *int   `json:"minQuantity"`
	MaxQuantity    *int   `json:"maxQuantity"`
	AttributeKey   string `json:"attributeKey"`
	AttributeValue string `json:"attributeValue"`
	SortBy         string `json:"sortBy"`
	SortDesc       bool   `json:"sortDesc"`
	PageIndex      int    `json:"pageIndex"`
	PageSize       int    `json:"pageSize"`
}

type CreateInput struct {
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Quantity    int    `json:"quantity"`
	CategoryID  int64  `json:"categoryId"`
	Attributes  string `json:"attributes"`
}

type UpdateInput struct {
	ID int64 `json:"id"`
	CreateInput
}
