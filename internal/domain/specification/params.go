package specification

import (
	"strings"
	"time"

	"github.com/ToolRent/GoToolRent/internal/domain/entity"
)

// Relation names understood by the repository executors.
const (
	IncludeCategory        = "Category"
	IncludeMedia           = "Media"
	IncludeProduct         = "Product"
	IncludeProductCategory = "Product.Category"
)

type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

func applySort[T any](s *Specification[T], column string, dir SortDirection) {
	if column == "" {
		return
	}
	if dir == Descending {
		s.ApplyOrderByDescending(column)
		return
	}
	s.ApplyOrderBy(column)
}

func contains(arg string) string {
	return "%" + strings.ToLower(arg) + "%"
}

type ProductSort string

const (
	ProductSortName     ProductSort = "name"
	ProductSortBrand    ProductSort = "brand"
	ProductSortQuantity ProductSort = "quantity"
)

// ProductListParams carries the optional filters for a product listing.
// Absent fields contribute no constraint.
type ProductListParams struct {
	Search         string
	Status         string
	Brand          string
	CategoryID     int64
	MinQuantity    *int
	MaxQuantity    *int
	AttributeKey   string
	AttributeValue string
	SortBy         ProductSort
	SortDir        SortDirection
	PageIndex      int
	PageSize       int
}

// ProductList builds the standard list specification: only filters whose
// parameter field is present are ANDed in; free-text search is a
// case-insensitive substring match over name, brand, model and
// description.
func ProductList(p ProductListParams) (*Specification[entity.Product], error) {
	s := New[entity.Product]()
	if p.Search != "" {
		q := contains(p.Search)
		s.AddClause(Where(
			"LOWER(name) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(model) LIKE ? OR LOWER(description) LIKE ?",
			q, q, q, q))
	}
	if p.Status != "" {
		s.AddClause(Where("status = ?", p.Status))
	}
	if p.Brand != "" {
		s.AddClause(Where("brand = ?", p.Brand))
	}
	if p.CategoryID > 0 {
		s.AddClause(Where("category_id = ?", p.CategoryID))
	}
	if p.MinQuantity != nil {
		s.AddClause(Where("quantity >= ?", *p.MinQuantity))
	}
	if p.MaxQuantity != nil {
		s.AddClause(Where("quantity <= ?", *p.MaxQuantity))
	}
	if p.AttributeKey != "" && p.AttributeValue != "" {
		// Attributes are an opaque JSON text blob; tag filters match the
		// serialized "key":"value" pair by containment.
		s.AddClause(Where("attributes LIKE ?", `%"`+p.AttributeKey+`":"`+p.AttributeValue+`"%`))
	}
	s.AddInclude(IncludeCategory)
	s.AddInclude(IncludeMedia)
	applySort(s, string(p.SortBy), p.SortDir)
	if err := s.ApplyPagination(p.PageIndex, p.PageSize); err != nil {
		return nil, err
	}
	return s, nil
}

// ProductByID matches a single product by primary key with the same
// includes as the list shape, so identity lookups come back hydrated.
func ProductByID(id int64) *Specification[entity.Product] {
	s := New[entity.Product](Where("id = ?", id))
	s.AddInclude(IncludeCategory)
	s.AddInclude(IncludeMedia)
	return s
}

type CategorySort string

const (
	CategorySortName CategorySort = "name"
)

type CategoryListParams struct {
	Search    string
	SortBy    CategorySort
	SortDir   SortDirection
	PageIndex int
	PageSize  int
}

func CategoryList(p CategoryListParams) (*Specification[entity.Category], error) {
	s := New[entity.Category]()
	if p.Search != "" {
		q := contains(p.Search)
		s.AddClause(Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", q, q))
	}
	applySort(s, string(p.SortBy), p.SortDir)
	if err := s.ApplyPagination(p.PageIndex, p.PageSize); err != nil {
		return nil, err
	}
	return s, nil
}

func CategoryByID(id int64) *Specification[entity.Category] {
	return New[entity.Category](Where("id = ?", id))
}

type OrderSort string

const (
	OrderSortCreatedAt OrderSort = "created_at"
	OrderSortStatus    OrderSort = "status"
)

type OrderListParams struct {
	Search    string
	Status    entity.OrderStatus
	ProductID int64
	From      *time.Time
	To        *time.Time
	SortBy    OrderSort
	SortDir   SortDirection
	PageIndex int
	PageSize  int
}

// OrderList free-text search covers the customer name and email plus the
// related product's name, resolved through a subquery so that Count sees
// the same predicate without a join.
func OrderList(p OrderListParams) (*Specification[entity.Order], error) {
	s := New[entity.Order]()
	if p.Search != "" {
		q := contains(p.Search)
		s.AddClause(Where(
			"LOWER(customer_name) LIKE ? OR LOWER(customer_email) LIKE ? OR product_id IN (SELECT id FROM products WHERE LOWER(name) LIKE ?)",
			q, q, q))
	}
	if p.Status != "" {
		s.AddClause(Where("status = ?", string(p.Status)))
	}
	if p.ProductID > 0 {
		s.AddClause(Where("product_id = ?", p.ProductID))
	}
	if p.From != nil {
		s.AddClause(Where("created_at >= ?", *p.From))
	}
	if p.To != nil {
		s.AddClause(Where("created_at <= ?", *p.To))
	}
	s.AddInclude(IncludeProduct)
	applySort(s, string(p.SortBy), p.SortDir)
	if err := s.ApplyPagination(p.PageIndex, p.PageSize); err != nil {
		return nil, err
	}
	return s, nil
}

func OrderByID(id int64) *Specification[entity.Order] {
	s := New[entity.Order](Where("id = ?", id))
	s.AddInclude(IncludeProduct)
	s.AddInclude(IncludeProductCategory)
	return s
}
