package product

import (
	"context"

	"github.com/ToolRent/GoToolRent/internal/application/port/outbound"
	"github.com/ToolRent/GoToolRent/internal/domain/entity"
	"github.com/ToolRent/GoToolRent/internal/domain/specification"
	"github.com/ToolRent/GoToolRent/pkg/pagination"
)

type ListUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
}

func NewListUseCase(factory outbound.UnitOfWorkFactory) *ListUseCaseImpl {
	return &ListUseCaseImpl{UowFactory: factory}
}

func (uc *ListUseCaseImpl) Execute(ctx context.Context, input ListInput) (pagination.Page[entity.Product], error) {
	pageIndex, pageSize := pagination.Normalize(input.PageIndex, input.PageSize)

	params := specification.ProductListParams{
		Search:         input.Search,
		Status:         input.Status,
		Brand:          input.Brand,
		CategoryID:     input.CategoryID,
		MinQuantity:    input.MinQuantity,
		MaxQuantity:    input.MaxQuantity,
		AttributeKey:   input.AttributeKey,
		AttributeValue: input.AttributeValue,
		SortBy:         sortField(input.SortBy),
		SortDir:        sortDir(input.SortDesc),
		PageIndex:      pageIndex,
		PageSize:       pageSize,
	}
	spec, err := specification.ProductList(params)
	if err != nil {
		return pagination.Page[entity.Product]{}, err
	}

	uow := uc.UowFactory.New()
	defer uow.Close(ctx)
	repo := uow.Products()

	rows, err := repo.GetAllBySpec(ctx, spec)
	if err != nil {
		return pagination.Page[entity.Product]{}, err
	}
	total, err := repo.Count(ctx, spec)
	if err != nil {
		return pagination.Page[entity.Product]{}, err
	}
	return pagination.NewPage(pageIndex, pageSize, total, rows), nil
}

// sortField maps the caller's sort property onto a known column;
// anything unrecognized means no explicit sort.
func sortField(s string) specification.ProductSort {
	switch specification.ProductSort(s) {
	case specification.ProductSortName, specification.ProductSortBrand, specification.ProductSortQuantity:
		return specification.ProductSort(s)
	}
	return ""
}

func sortDir(desc bool) specification.SortDirection {
	if desc {
		return specification.Descending
	}
	return specification.Ascending
}
