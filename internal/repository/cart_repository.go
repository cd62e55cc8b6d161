package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartListQuery struct {
	Pagination
	UserID *int64
}

type CartRepository interface {
	List(ctx context.Context, q CartListQuery) ([]model.Cart, int64, error)
	// user / product / orderを連れて取得
	FindByID(ctx context.Context, id int64) (model.Cart, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, cart *model.Cart) error
	Update(ctx context.Context, cart *model.Cart) error
	Delete(ctx context.Context, id int64) error
	// 注文が付いているカートは削除ブロック
	HasOrder(ctx context.Context, id int64) (bool, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Cart, error)
}
