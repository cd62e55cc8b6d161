package repository

import (
	"context"

	"app/internal/domain/model"
)

type StoreListQuery struct {
	Pagination
	Name string
	City string
}

type StoreRepository interface {
	List(ctx context.Context, q StoreListQuery) ([]model.Store, int64, error)
	ListAll(ctx context.Context) ([]model.Store, error)
	FindByID(ctx context.Context, id int64) (model.Store, error)
	FindByIDWithProducts(ctx context.Context, id int64) (model.Store, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, store *model.Store) error
	Update(ctx context.Context, store *model.Store) error
	Delete(ctx context.Context, id int64) error
	SearchByName(ctx context.Context, name string, p Pagination) ([]model.Store, int64, error)
	ListByCity(ctx context.Context, city string, p Pagination) ([]model.Store, int64, error)
}
