package order

import (
	"context"
	"time"

	"github.com/ToolRent/GoToolRent/internal/application/port/outbound"
	"github.com/ToolRent/GoToolRent/internal/domain/entity"
	"github.com/ToolRent/GoToolRent/internal/domain/specification"
	"github.com/ToolRent/GoToolRent/pkg/metrics"
	"github.com/ToolRent/GoToolRent/pkg/pagination"
)

type ListInput struct {
	Search    string     `json:"search"`
	Status    string     `json:"status"`
	ProductID int64      `json:"productId"`
	From      *time.Time `json:"from"`
	To        *time.Time `json:"to"`
	SortDesc  bool       `json:"sortDesc"`
	PageIndex int        `json:"pageIndex"`
	PageSize  int        `json:"pageSize"`
}

type UpdateStatusInput struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type ListUseCase interface {
	Execute(ctx context.Context, input ListInput) (pagination.Page[entity.Order], error)
}

type GetUseCase interface {
	Execute(ctx context.Context, id int64) (*entity.Order, error)
}

type UpdateStatusUseCase interface {
	Execute(ctx context.Context, input UpdateStatusInput) (*entity.Order, error)
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

func (uc *ListUseCaseImpl) Execute(ctx context.Context, input ListInput) (pagination.Page[entity.Order], error) {
	pageIndex, pageSize := pagination.Normalize(input.PageIndex, input.PageSize)

	var status entity.OrderStatus
	if input.Status != "" {
		parsed, err := entity.ParseOrderStatus(input.Status)
		if err != nil {
			return pagination.Page[entity.Order]{}, err
		}
		status = parsed
	}

	dir := specification.Ascending
	if input.SortDesc {
		dir = specification.Descending
	}
	spec, err := specification.OrderList(specification.OrderListParams{
		Search:    input.Search,
		Status:    status,
		ProductID: input.ProductID,
		From:      input.From,
		To:        input.To,
		SortBy:    specification.OrderSortCreatedAt,
		SortDir:   dir,
		PageIndex: pageIndex,
		PageSize:  pageSize,
	})
	if err != nil {
		return pagination.Page[entity.Order]{}, err
	}

	uow := uc.UowFactory.New()
	defer uow.Close(ctx)
	repo := uow.Orders()

	rows, err := repo.GetAllBySpec(ctx, spec)
	if err != nil {
		return pagination.Page[entity.Order]{}, err
	}
	total, err := repo.Count(ctx, spec)
	if err != nil {
		return pagination.Page[entity.Order]{}, err
	}
	return pagination.NewPage(pageIndex, pageSize, total, rows), nil
}

type GetUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
}

func NewGetUseCase(factory outbound.UnitOfWorkFactory) *GetUseCaseImpl {
	return &GetUseCaseImpl{UowFactory: factory}
}

func (uc *GetUseCaseImpl) Execute(ctx context.Context, id int64) (*entity.Order, error) {
	uow := uc.UowFactory.New()
	defer uow.Close(ctx)
	return uow.Orders().GetBySpec(ctx, specification.OrderByID(id))
}

type UpdateStatusUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
	Metrics    metrics.Metrics
}

func NewUpdateStatusUseCase(factory outbound.UnitOfWorkFactory, m metrics.Metrics) *UpdateStatusUseCaseImpl {
	return &UpdateStatusUseCaseImpl{UowFactory: factory, Metrics: m}
}

func (uc *UpdateStatusUseCaseImpl) Execute(ctx context.Context, input UpdateStatusInput) (*entity.Order, error) {
	status, err := entity.ParseOrderStatus(input.Status)
	if err != nil {
		return nil, err
	}

	uow := uc.UowFactory.New()
	defer uow.Close(ctx)
	repo := uow.Orders()

	o, err := repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := o.SetStatus(status); err != nil {
		return nil, err
	}
	if err := repo.Update(ctx, o); err != nil {
		return nil, err
	}
	if _, err := uow.Flush(ctx); err != nil {
		return nil, err
	}
	uc.Metrics.RecordOrderStatusChange(string(status))
	return o, nil
}

type DeleteUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
}

func NewDeleteUseCase(factory outbound.UnitOfWorkFactory) *DeleteUseCaseImpl {
	return &DeleteUseCaseImpl{UowFactory: factory}
}

// Execute hard-deletes the order row.
func (uc *DeleteUseCaseImpl) Execute(ctx context.Context, id int64) error {
	uow := uc.UowFactory.New()
	defer uow.Close(ctx)
	if err := uow.Orders().Delete(ctx, id); err != nil {
		return err
	}
	_, err := uow.Flush(ctx)
	return err
}
