package repository

import (
	"context"

	"app/internal/domain/model"
)

type CategoryListQuery struct {
	Pagination
	Name string
}

type CategoryRepository interface {
	List(ctx context.Context, q CategoryListQuery) ([]model.Category, int64, error)
	ListAll(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
	FindByIDWithProducts(ctx context.Context, id int64) (model.Category, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// 名前の重複チェック（excludeID>0なら自分自身は除外）
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id int64) error
	// 商品が1件でも残っていれば削除はブロック
	HasProducts(ctx context.Context, id int64) (bool, error)
	ListProducts(ctx context.Context, id int64) ([]model.Product, error)
}
