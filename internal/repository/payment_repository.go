package repository

import (
	"context"

	"app/internal/domain/model"
)

type PaymentListQuery struct {
	Pagination
	Status string
}

type PaymentRepository interface {
	List(ctx context.Context, q PaymentListQuery) ([]model.Payment, int64, error)
	FindByID(ctx context.Context, id int64) (model.Payment, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, payment *model.Payment) error
	Update(ctx context.Context, payment *model.Payment) error
	Delete(ctx context.Context, id int64) error
	// 注文が付いている支払いは削除ブロック
	HasOrders(ctx context.Context, id int64) (bool, error)
}
