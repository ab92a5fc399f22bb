package category

import (
	"context"
	"fmt"

	"github.com/ToolRent/GoToolRent/internal/application/port/outbound"
	"github.com/ToolRent/GoToolRent/internal/domain/entity"
	"github.com/ToolRent/GoToolRent/internal/domain/specification"
	"github.com/ToolRent/GoToolRent/pkg/pagination"
)

type ListInput struct {
	Search    string `json:"search"`
	SortDesc  bool   `json:"sortDesc"`
	PageIndex int    `json:"pageIndex"`
	PageSize  int    `json:"pageSize"`
}

type SaveInput struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type ListUseCase interface {
	Execute(ctx context.Context, input ListInput) (pagination.Page[entity.Category], error)
}

type GetUseCase interface {
	Execute(ctx context.Context, id int64) (*entity.Category, error)
}

type CreateUseCase interface {
	Execute(ctx context.Context, input SaveInput) (*entity.Category, error)
}

type UpdateUseCase interface {
	Execute(ctx context.Context, input SaveInput) (*entity.Category, error)
}

type DeleteUseCase interface {
	Execute(ctx context.Context, id int64) error
}

type ListUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
}

func NewListUseCase(factory outbound.UnitOfWorkFactory) *ListUseCaseImpl {
	return &ListUseCaseImpl{UowFactory: factory}
}

func (uc *ListUseCaseImpl) Execute(ctx context.Context, input ListInput) (pagination.Page[entity.Category], error) {
	pageIndex, pageSize := pagination.Normalize(input.PageIndex, input.PageSize)

	dir := specification.Ascending
	if input.SortDesc {
		dir = specification.Descending
	}
	spec, err := specification.CategoryList(specification.CategoryListParams{
		Search:    input.Search,
		SortBy:    specification.CategorySortName,
		SortDir:   dir,
		PageIndex: pageIndex,
		PageSize:  pageSize,
	})
	if err != nil {
		return pagination.Page[entity.Category]{}, err
	}

	uow := uc.UowFactory.New()
	defer uow.Close(ctx)
	repo := uow.Categories()

	rows, err := repo.GetAllBySpec(ctx, spec)
	if err != nil {
		return pagination.Page[entity.Category]{}, err
	}
	total, err := repo.Count(ctx, spec)
	if err != nil {
		return pagination.Page[entity.Category]{}, err
	}
	return pagination.NewPage(pageIndex, pageSize, total, rows), nil
}

type GetUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
}

func NewGetUseCase(factory outbound.UnitOfWorkFactory) *GetUseCaseImpl {
	return &GetUseCaseImpl{UowFactory: factory}
}

func (uc *GetUseCaseImpl) Execute(ctx context.Context, id int64) (*entity.Category, error) {
	uow := uc.UowFactory.New()
	defer uow.Close(ctx)
	return uow.Categories().GetBySpec(ctx, specification.CategoryByID(id))
}

type CreateUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
}

func NewCreateUseCase(factory outbound.UnitOfWorkFactory) *CreateUseCaseImpl {
	return &CreateUseCaseImpl{UowFactory: factory}
}

func (uc *CreateUseCaseImpl) Execute(ctx context.Context, input SaveInput) (*entity.Category, error) {
	c, err := entity.NewCategory(input.Name, input.Description, input.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrValidation, err)
	}
	uow := uc.UowFactory.New()
	defer uow.Close(ctx)
	if err := uow.Categories().Add(ctx, c); err != nil {
		return nil, err
	}
	if _, err := uow.Flush(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

type UpdateUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
}

func NewUpdateUseCase(factory outbound.UnitOfWorkFactory) *UpdateUseCaseImpl {
	return &UpdateUseCaseImpl{UowFactory: factory}
}

func (uc *UpdateUseCaseImpl) Execute(ctx context.Context, input SaveInput) (*entity.Category, error) {
	uow := uc.UowFactory.New()
	defer uow.Close(ctx)
	repo := uow.Categories()

	c, err := repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: %v", entity.ErrValidation, entity.ErrNameIsRequired)
	}
	c.Name = input.Name
	c.Description = input.Description
	c.ImageURL = input.ImageURL

	if err := repo.Update(ctx, c); err != nil {
		return nil, err
	}
	if _, err := uow.Flush(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

type DeleteUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
}

func NewDeleteUseCase(factory outbound.UnitOfWorkFactory) *DeleteUseCaseImpl {
	return &DeleteUseCaseImpl{UowFactory: factory}
}

// Execute removes a category. The store's RESTRICT rule rejects the
// delete while products still reference it, and that failure propagates.
func (uc *DeleteUseCaseImpl) Execute(ctx context.Context, id int64) error {
	uow := uc.UowFactory.New()
	defer uow.Close(ctx)
	if err := uow.Categories().Delete(ctx, id); err != nil {
		return err
	}
	_, err := uow.Flush(ctx)
	return err
}
