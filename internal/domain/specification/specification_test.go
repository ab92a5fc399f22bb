package specification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToolRent/GoToolRent/internal/domain/entity"
)

func TestPredicate_EmptyMatchesEverything(t *testing.T) {
	s := New[entity.Product]()

	expr, args := s.Predicate()

	assert.Empty(t, expr)
	assert.Nil(t, args)
}

func TestPredicate_FoldsClausesWithAND(t *testing.T) {
	s := New[entity.Product](
		Where("brand = ?", "Bosch"),
		Where("quantity >= ?", 2),
	)

	expr, args := s.Predicate()

	assert.Equal(t, "(brand = ?) AND (quantity >= ?)", expr)
	assert.Equal(t, []any{"Bosch", 2}, args)
}

func TestApplyPagination_ComputesSkipFromPageIndex(t *testing.T) {
	s := New[entity.Product]()

	err := s.ApplyPagination(3, 10)

	require.NoError(t, err)
	skip, take, ok := s.Pagination()
	assert.True(t, ok)
	assert.Equal(t, 20, skip)
	assert.Equal(t, 10, take)
}

func TestApplyPagination_RejectsNonPositiveValues(t *testing.T) {
	for _, tc := range []struct {
		name      string
		pageIndex int
		pageSize  int
	}{
		{"zero index", 0, 10},
		{"zero size", 1, 0},
		{"negative index", -1, 10},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := New[entity.Product]()
			err := s.ApplyPagination(tc.pageIndex, tc.pageSize)
			assert.ErrorIs(t, err, entity.ErrValidation)
		})
	}
}

func TestPagination_DisabledByDefault(t *testing.T) {
	s := New[entity.Product]()

	_, _, ok := s.Pagination()

	assert.False(t, ok)
}

func TestOrdering_AscendingWinsOverDescending(t *testing.T) {
	s := New[entity.Product]()
	s.ApplyOrderByDescending("quantity")
	s.ApplyOrderBy("name")

	column, desc, ok := s.Ordering()

	require.True(t, ok)
	assert.Equal(t, "name", column)
	assert.False(t, desc)
}

func TestOrdering_DescendingAlone(t *testing.T) {
	s := New[entity.Product]()
	s.ApplyOrderByDescending("created_at")

	column, desc, ok := s.Ordering()

	require.True(t, ok)
	assert.Equal(t, "created_at", column)
	assert.True(t, desc)
}

func TestOrdering_NoneSet(t *testing.T) {
	s := New[entity.Product]()

	_, _, ok := s.Ordering()

	assert.False(t, ok)
}

func TestAddInclude_PreservesRegistrationOrder(t *testing.T) {
	s := New[entity.Order]()
	s.AddInclude(IncludeProduct)
	s.AddInclude(IncludeProductCategory)

	assert.Equal(t, []string{IncludeProduct, IncludeProductCategory}, s.Includes())
}

func TestProductList_AbsentFiltersContributeNothing(t *testing.T) {
	s, err := ProductList(ProductListParams{PageIndex: 1, PageSize: 10})

	require.NoError(t, err)
	expr, args := s.Predicate()
	assert.Empty(t, expr)
	assert.Nil(t, args)
}

func TestProductList_SearchIsCaseInsensitiveContains(t *testing.T) {
	s, err := ProductList(ProductListParams{Search: "DRILL", PageIndex: 1, PageSize: 10})

	require.NoError(t, err)
	expr, args := s.Predicate()
	assert.Contains(t, expr, "LOWER(name) LIKE ?")
	assert.Equal(t, []any{"%drill%", "%drill%", "%drill%", "%drill%"}, args)
}

func TestProductList_AllFiltersAND(t *testing.T) {
	min, max := 1, 5
	s, err := ProductList(ProductListParams{
		Search:      "saw",
		Status:      "available",
		Brand:       "Makita",
		CategoryID:  7,
		MinQuantity: &min,
		MaxQuantity: &max,
		PageIndex:   1,
		PageSize:    10,
	})

	require.NoError(t, err)
	expr, args := s.Predicate()
	assert.Contains(t, expr, "(status = ?)")
	assert.Contains(t, expr, "(brand = ?)")
	assert.Contains(t, expr, "(category_id = ?)")
	assert.Contains(t, expr, "(quantity >= ?)")
	assert.Contains(t, expr, "(quantity <= ?)")
	assert.Len(t, args, 9)
	assert.Equal(t, []string{IncludeCategory, IncludeMedia}, s.Includes())
}

func TestProductList_InvalidPaginationPropagates(t *testing.T) {
	_, err := ProductList(ProductListParams{PageIndex: 0, PageSize: 10})

	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestOrderList_StatusAndRangeFilters(t *testing.T) {
	s, err := OrderList(OrderListParams{
		Status:    entity.StatusNewOrder,
		ProductID: 3,
		PageIndex: 1,
		PageSize:  10,
	})

	require.NoError(t, err)
	expr, args := s.Predicate()
	assert.Equal(t, "(status = ?) AND (product_id = ?)", expr)
	assert.Equal(t, []any{"NEW_ORDER", int64(3)}, args)
}
