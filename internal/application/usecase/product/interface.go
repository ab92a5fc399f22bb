package product

import (
	"context"

	"github.com/ToolRent/GoToolRent/internal/domain/entity"
	"github.com/ToolRent/GoToolRent/pkg/pagination"
)

type ListUseCase interface {
	Execute(ctx context.Context, input ListInput) (pagination.Page[entity.Product], error)
}

type GetUseCase interface {
	Execute(ctx context.Context, id int64) (*entity.Product, error)
}

type CreateUseCase interface {
	Execute(ctx context.Context, input CreateInput) (*entity.Product, error)
}

type UpdateUseCase interface {
	Execute(ctx context.Context, input UpdateInput) (*entity.Product, error)
}

type DeleteUseCase interface {
	Execute(ctx context.Context, id int64) error
}
