package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/ToolRent/GoToolRent/internal/domain/entity"
	"github.com/ToolRent/GoToolRent/internal/domain/specification"
)

// relationLoader hydrates one named relation into an already-fetched
// batch of entities with a follow-up query.
type relationLoader[T any] func(ctx context.Context, s *session, rows []*T) error

// model maps one entity type onto its table: column list, value
// extraction for writes, id plumbing and the relation loaders backing
// the specification's include names.
type model[T any] struct {
	table     string
	columns   []string
	values    func(*T) []any
	id        func(*T) int64
	setID     func(*T, int64)
	relations map[string]relationLoader[T]
}

func (m model[T]) selectList() string {
	return "id, " + strings.Join(m.columns, ", ")
}

func productModel() model[entity.Product] {
	return model[entity.Product]{
		table:   "products",
		columns: []string{"name", "brand", "model", "description", "status", "quantity", "category_id", "attributes"},
		values: func(p *entity.Product) []any {
			return []any{p.Name, p.Brand, p.Model, p.Description, p.Status, p.Quantity, p.CategoryID, p.Attributes}
		},
		id:    func(p *entity.Product) int64 { return p.ID },
		setID: func(p *entity.Product, id int64) { p.ID = id },
		relations: map[string]relationLoader[entity.Product]{
			specification.IncludeCategory: loadProductCategories,
			specification.IncludeMedia:    loadProductMedia,
		},
	}
}

func categoryModel() model[entity.Category] {
	return model[entity.Category]{
		table:   "categories",
		columns: []string{"name", "description", "image_url"},
		values: func(c *entity.Category) []any {
			return []any{c.Name, c.Description, c.ImageURL}
		},
		id:        func(c *entity.Category) int64 { return c.ID },
		setID:     func(c *entity.Category, id int64) { c.ID = id },
		relations: map[string]relationLoader[entity.Category]{},
	}
}

func orderModel() model[entity.Order] {
	return model[entity.Order]{
		table: "orders",
		columns: []string{
			"created_at", "status", "product_status", "rental_period",
			"customer_name", "customer_email", "customer_phone", "customer_address", "product_id",
		},
		values: func(o *entity.Order) []any {
			return []any{
				o.CreatedAt, string(o.Status), o.ProductStatus, o.RentalPeriod,
				o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.CustomerAddress, o.ProductID,
			}
		},
		id:    func(o *entity.Order) int64 { return o.ID },
		setID: func(o *entity.Order, id int64) { o.ID = id },
		relations: map[string]relationLoader[entity.Order]{
			specification.IncludeProduct:         loadOrderProducts,
			specification.IncludeProductCategory: loadOrderProductCategories,
		},
	}
}

func userModel() model[entity.User] {
	return model[entity.User]{
		table:   "users",
		columns: []string{"name", "email", "role"},
		values: func(u *entity.User) []any {
			return []any{u.Name, u.Email, u.Role}
		},
		id:        func(u *entity.User) int64 { return u.ID },
		setID:     func(u *entity.User, id int64) { u.ID = id },
		relations: map[string]relationLoader[entity.User]{},
	}
}

func fetchCategoriesByID(ctx context.Context, s *session, ids []int64) (map[int64]entity.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In("SELECT id, name, description, image_url FROM categories WHERE id IN (?)", ids)
	if err != nil {
		return nil, err
	}
	var cats []entity.Category
	if err := sqlx.SelectContext(ctx, s.ext(), &cats, s.rebind(query), args...); err != nil {
		return nil, err
	}
	byID := make(map[int64]entity.Category, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}
	return byID, nil
}

func loadProductCategories(ctx context.Context, s *session, rows []*entity.Product) error {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, p := range rows {
		if _, ok := seen[p.CategoryID]; !ok {
			seen[p.CategoryID] = struct{}{}
			ids = append(ids, p.CategoryID)
		}
	}
	byID, err := fetchCategoriesByID(ctx, s, ids)
	if err != nil {
		return fmt.Errorf("load product categories: %w", err)
	}
	for _, p := range rows {
		if c, ok := byID[p.CategoryID]; ok {
			cat := c
			p.Category = &cat
		}
	}
	return nil
}

func loadProductMedia(ctx context.Context, s *session, rows []*entity.Product) error {
	if len(rows) == 0 {
		return nil
	}
	ids := make([]int64, len(rows))
	for i, p := range rows {
		ids[i] = p.ID
	}
	query, args, err := sqlx.In("SELECT id, product_id, url, kind FROM product_media WHERE product_id IN (?) ORDER BY id", ids)
	if err != nil {
		return err
	}
	var media []entity.ProductMedia
	if err := sqlx.SelectContext(ctx, s.ext(), &media, s.rebind(query), args...); err != nil {
		return fmt.Errorf("load product media: %w", err)
	}
	byProduct := make(map[int64][]entity.ProductMedia)
	for _, m := range media {
		byProduct[m.ProductID] = append(byProduct[m.ProductID], m)
	}
	for _, p := range rows {
		p.Media = byProduct[p.ID]
	}
	return nil
}

func loadOrderProducts(ctx context.Context, s *session, rows []*entity.Order) error {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, o := range rows {
		if _, ok := seen[o.ProductID]; !ok {
			seen[o.ProductID] = struct{}{}
			ids = append(ids, o.ProductID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(
		"SELECT id, name, brand, model, description, status, quantity, category_id, attributes FROM products WHERE id IN (?)", ids)
	if err != nil {
		return err
	}
	var products []entity.Product
	if err := sqlx.SelectContext(ctx, s.ext(), &products, s.rebind(query), args...); err != nil {
		return fmt.Errorf("load order products: %w", err)
	}
	byID := make(map[int64]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, o := range rows {
		if p, ok := byID[o.ProductID]; ok {
			prod := p
			o.Product = &prod
		}
	}
	return nil
}

// loadOrderProductCategories hydrates the category of each order's
// product, loading the products first if an earlier include did not.
func loadOrderProductCategories(ctx context.Context, s *session, rows []*entity.Order) error {
	needProducts := false
	for _, o := range rows {
		if o.Product == nil {
			needProducts = true
			break
		}
	}
	if needProducts {
		if err := loadOrderProducts(ctx, s, rows); err != nil {
			return err
		}
	}
	products := make([]*entity.Product, 0, len(rows))
	for _, o := range rows {
		if o.Product != nil {
			products = append(products, o.Product)
		}
	}
	if len(products) == 0 {
		return nil
	}
	return loadProductCategories(ctx, s, products)
}
