package repository

import (
	"context"

	"app/internal/domain/model"
)

type ReviewListQuery struct {
	Pagination
	Rating   *int
	FromDate string
	ToDate   string
}

type ReviewRepository interface {
	List(ctx context.Context, q ReviewListQuery) ([]model.Review, int64, error)
	FindByID(ctx context.Context, id int64) (model.Review, error)
	FindByIDWithRelations(ctx context.Context, id int64) (model.Review, error)
	Create(ctx context.Context, review *model.Review) error
	Update(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id int64) error
	ListByProductID(ctx context.Context, productID int64, q ReviewListQuery) ([]model.Review, int64, error)
	ListByUserID(ctx context.Context, userID int64, q ReviewListQuery) ([]model.Review, int64, error)
	AverageRatingForProduct(ctx context.Context, productID int64) (float64, error)
	// (user, product) につきレビューは1件
	ExistsForUserAndProduct(ctx context.Context, userID int64, productID int64) (bool, error)
}
