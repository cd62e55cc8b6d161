package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderListQuery struct {
	Pagination
	PaymentID *int64
	CartID    *int64
	FromDate  string
	ToDate    string
}

type OrderRepository interface {
	List(ctx context.Context, q OrderListQuery) ([]model.Order, int64, error)
	// cart.user / cart.product / paymentを連れて取得
	FindByID(ctx context.Context, id int64) (model.Order, error)
	Create(ctx context.Context, order *model.Order) error
	Update(ctx context.Context, order *model.Order) error
	Delete(ctx context.Context, id int64) error
	// excludeOrderID>0なら更新対象自身は除外
	CartHasOrder(ctx context.Context, cartID int64, excludeOrderID int64) (bool, error)
	// ユーザーのカート経由で注文を引く
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
}
