package product

import (
	"context"
	"fmt"

	"github.com/ToolRent/GoToolRent/internal/application/port/outbound"
	"github.com/ToolRent/GoToolRent/internal/domain/entity"
	"github.com/ToolRent/GoToolRent/internal/domain/specification"
)

type GetUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
}

func NewGetUseCase(factory outbound.UnitOfWorkFactory) *GetUseCaseImpl {
	return &GetUseCaseImpl{UowFactory: factory}
}

func (uc *GetUseCaseImpl) Execute(ctx context.Context, id int64) (*entity.Product, error) {
	uow := uc.UowFactory.New()
	defer uow.Close(ctx)
	return uow.Products().GetBySpec(ctx, specification.ProductByID(id))
}

type CreateUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
}

func NewCreateUseCase(factory outbound.UnitOfWorkFactory) *CreateUseCaseImpl {
	return &CreateUseCaseImpl{UowFactory: factory}
}

func (uc *CreateUseCaseImpl) Execute(ctx context.Context, input CreateInput) (*entity.Product, error) {
	p, err := entity.NewProduct(input.Name, input.Brand, input.Model, input.CategoryID, input.Quantity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrValidation, err)
	}
	p.Description = input.Description
	p.Status = input.Status
	p.Attributes = input.Attributes

	uow := uc.UowFactory.New()
	defer uow.Close(ctx)
	if err := uow.Products().Add(ctx, p); err != nil {
		return nil, err
	}
	if _, err := uow.Flush(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

type UpdateUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
}

func NewUpdateUseCase(factory outbound.UnitOfWorkFactory) *UpdateUseCaseImpl {
	return &UpdateUseCaseImpl{UowFactory: factory}
}

func (uc *UpdateUseCaseImpl) Execute(ctx context.Context, input UpdateInput) (*entity.Product, error) {
	uow := uc.UowFactory.New()
	defer uow.Close(ctx)
	repo := uow.Products()

	p, err := repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	p.Name = input.Name
	p.Brand = input.Brand
	p.Model = input.Model
	p.Description = input.Description
	p.Status = input.Status
	p.Quantity = input.Quantity
	p.CategoryID = input.CategoryID
	p.Attributes = input.Attributes
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrValidation, err)
	}

	if err := repo.Update(ctx, p); err != nil {
		return nil, err
	}
	if _, err := uow.Flush(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

type DeleteUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
}

func NewDeleteUseCase(factory outbound.UnitOfWorkFactory) *DeleteUseCaseImpl {
	return &DeleteUseCaseImpl{UowFactory: factory}
}

func (uc *DeleteUseCaseImpl) Execute(ctx context.Context, id int64) error {
	uow := uc.UowFactory.New()
	defer uow.Close(ctx)
	if err := uow.Products().Delete(ctx, id); err != nil {
		return err
	}
	_, err := uow.Flush(ctx)
	return err
}
