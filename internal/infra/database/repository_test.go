package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToolRent/GoToolRent/internal/domain/entity"
	"github.com/ToolRent/GoToolRent/internal/domain/specification"
	"github.com/ToolRent/GoToolRent/pkg/logger"
)

func TestGetAllBySpec_SearchFindsSingleMatch(t *testing.T) {
	db := newTestDB(t)
	seedToolCatalog(t, db)
	uow := NewUnitOfWork(db, logger.NewNop())
	ctx := context.Background()

	spec, err := specification.ProductList(specification.ProductListParams{
		Search: "drill", PageIndex: 1, PageSize: 10,
	})
	require.NoError(t, err)

	rows, err := uow.Products().GetAllBySpec(ctx, spec)
	require.NoError(t, err)
	total, err := uow.Products().Count(ctx, spec)
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "Cordless Drill", rows[0].Name)
	assert.Equal(t, int64(1), total)
}

func TestCount_IgnoresSortAndPagination(t *testing.T) {
	db := newTestDB(t)
	seedManyProducts(t, db, 15)
	uow := NewUnitOfWork(db, logger.NewNop())
	ctx := context.Background()

	spec, err := specification.ProductList(specification.ProductListParams{
		SortBy:    specification.ProductSortName,
		PageIndex: 2,
		PageSize:  10,
	})
	require.NoError(t, err)

	rows, err := uow.Products().GetAllBySpec(ctx, spec)
	require.NoError(t, err)
	total, err := uow.Products().Count(ctx, spec)
	require.NoError(t, err)

	assert.Len(t, rows, 5)
	assert.Equal(t, int64(15), total)
}

func TestGetAllBySpec_PaginationWindow(t *testing.T) {
	db := newTestDB(t)
	seedManyProducts(t, db, 15)
	uow := NewUnitOfWork(db, logger.NewNop())

	spec, err := specification.ProductList(specification.ProductListParams{
		SortBy:    specification.ProductSortName,
		PageIndex: 2,
		PageSize:  10,
	})
	require.NoError(t, err)

	rows, err := uow.Products().GetAllBySpec(context.Background(), spec)
	require.NoError(t, err)

	require.Len(t, rows, 5)
	assert.Equal(t, "tool-11", rows[0].Name)
	assert.Equal(t, "tool-15", rows[4].Name)
}

func TestGetAllBySpec_AscendingBeatsDescending(t *testing.T) {
	db := newTestDB(t)
	seedToolCatalog(t, db)
	uow := NewUnitOfWork(db, logger.NewNop())

	spec := specification.New[entity.Product]()
	spec.ApplyOrderByDescending("quantity")
	spec.ApplyOrderBy("name")

	rows, err := uow.Products().GetAllBySpec(context.Background(), spec)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "Circular Saw", rows[0].Name)
	assert.Equal(t, "Claw Hammer", rows[1].Name)
	assert.Equal(t, "Cordless Drill", rows[2].Name)
}

func TestGetByID(t *testing.T) {
	db := newTestDB(t)
	seedToolCatalog(t, db)
	uow := NewUnitOfWork(db, logger.NewNop())
	ctx := context.Background()

	p, err := uow.Products().GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Circular Saw", p.Name)

	_, err = uow.Products().GetByID(ctx, 999)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestGetBySpec_NoMatchIsNotFound(t *testing.T) {
	db := newTestDB(t)
	seedToolCatalog(t, db)
	uow := NewUnitOfWork(db, logger.NewNop())

	_, err := uow.Products().GetBySpec(context.Background(), specification.ProductByID(999))

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestGetBySpec_HydratesCategoryAndMedia(t *testing.T) {
	db := newTestDB(t)
	seedToolCatalog(t, db)
	db.MustExec("INSERT INTO product_media (product_id, url, kind) VALUES (1, 'https://cdn/img1.jpg', 'image')")
	db.MustExec("INSERT INTO product_media (product_id, url, kind) VALUES (1, 'https://cdn/manual.pdf', 'manual')")
	uow := NewUnitOfWork(db, logger.NewNop())

	p, err := uow.Products().GetBySpec(context.Background(), specification.ProductByID(1))
	require.NoError(t, err)

	require.NotNil(t, p.Category)
	assert.Equal(t, "Power Tools", p.Category.Name)
	require.Len(t, p.Media, 2)
	assert.Equal(t, "https://cdn/img1.jpg", p.Media[0].URL)
}

func TestGetAllBySpec_UnknownIncludeIsValidationError(t *testing.T) {
	db := newTestDB(t)
	seedToolCatalog(t, db)
	uow := NewUnitOfWork(db, logger.NewNop())

	spec := specification.New[entity.Product]()
	spec.AddInclude("Owner")

	_, err := uow.Products().GetAllBySpec(context.Background(), spec)

	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestAdd_StagedUntilFlush(t *testing.T) {
	db := newTestDB(t)
	seedCategory(t, db, 1, "Power Tools")
	uow := NewUnitOfWork(db, logger.NewNop())
	ctx := context.Background()

	p, err := entity.NewProduct("Jigsaw", "Bosch", "PST 700", 1, 3)
	require.NoError(t, err)
	require.NoError(t, uow.Products().Add(ctx, p))

	assert.Equal(t, int64(0), countRows(t, db, "products"))

	affected, err := uow.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.Equal(t, int64(1), countRows(t, db, "products"))
	assert.NotZero(t, p.ID)
}

func TestAddRange_StagesInOrder(t *testing.T) {
	db := newTestDB(t)
	seedCategory(t, db, 1, "Power Tools")
	uow := NewUnitOfWork(db, logger.NewNop())
	ctx := context.Background()

	a, _ := entity.NewProduct("Router", "Makita", "RT0700", 1, 1)
	b, _ := entity.NewProduct("Planer", "Makita", "KP0800", 1, 1)
	require.NoError(t, uow.Products().AddRange(ctx, []*entity.Product{a, b}))

	affected, err := uow.Flush(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), affected)
	assert.Less(t, a.ID, b.ID)
}

func TestUpdate_PersistsOnFlush(t *testing.T) {
	db := newTestDB(t)
	seedToolCatalog(t, db)
	uow := NewUnitOfWork(db, logger.NewNop())
	ctx := context.Background()

	p, err := uow.Products().GetByID(ctx, 1)
	require.NoError(t, err)
	p.Quantity = 99
	require.NoError(t, uow.Products().Update(ctx, p))

	affected, err := uow.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	reread, err := uow.Products().GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 99, reread.Quantity)
}

func TestDelete_MissingIDIsNotFound(t *testing.T) {
	db := newTestDB(t)
	seedToolCatalog(t, db)
	uow := NewUnitOfWork(db, logger.NewNop())
	ctx := context.Background()

	err := uow.Products().Delete(ctx, 999)

	assert.ErrorIs(t, err, entity.ErrNotFound)

	// Nothing was staged by the failed delete.
	affected, err := uow.Flush(ctx)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestDelete_RemovesRowOnFlush(t *testing.T) {
	db := newTestDB(t)
	seedToolCatalog(t, db)
	db.MustExec("DELETE FROM products WHERE id != 3")
	uow := NewUnitOfWork(db, logger.NewNop())
	ctx := context.Background()

	require.NoError(t, uow.Products().Delete(ctx, 3))
	affected, err := uow.Flush(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), affected)
	assert.Equal(t, int64(0), countRows(t, db, "products"))
}

func TestDelete_CategoryInUseFailsAtFlush(t *testing.T) {
	db := newTestDB(t)
	seedToolCatalog(t, db)
	uow := NewUnitOfWork(db, logger.NewNop())
	ctx := context.Background()

	require.NoError(t, uow.Categories().Delete(ctx, 1))
	_, err := uow.Flush(ctx)

	assert.ErrorIs(t, err, entity.ErrStorage)
	assert.Equal(t, int64(2), countRows(t, db, "categories"))
}

func TestFindAndAny(t *testing.T) {
	db := newTestDB(t)
	seedToolCatalog(t, db)
	uow := NewUnitOfWork(db, logger.NewNop())
	ctx := context.Background()

	p, err := uow.Products().Find(ctx, specification.Where("brand = ?", "Stanley"))
	require.NoError(t, err)
	assert.Equal(t, "Claw Hammer", p.Name)

	ok, err := uow.Products().Any(ctx, specification.Where("quantity > ?", 5))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uow.Products().Any(ctx, specification.Where("brand = ?", "DeWalt"))
	require.NoError(t, err)
	assert.False(t, ok)
}
