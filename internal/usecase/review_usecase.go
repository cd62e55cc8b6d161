package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CreateReviewInput struct {
	UserID    int64   `json:"user_id" validate:"required,gt=0"`
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
	Rating    int     `json:"rating" validate:"required,gte=1,lte=5"`
	Review    *string `json:"review" validate:"omitempty,max=1000"`
}

// 更新で受けるのはrating / review本文だけ。user_id / product_idは固定。
type UpdateReviewInput struct {
	Rating *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Review *string `json:"review" validate:"omitempty,max=1000"`
}

type ReviewUsecase struct {
	reviews   repo.ReviewRepository
	users     repo.UserRepository
	products  repo.ProductRepository
	validator StructValidator
}

func NewReviewUsecase(
	reviews repo.ReviewRepository,
	users repo.UserRepository,
	products repo.ProductRepository,
	validator StructValidator,
) *ReviewUsecase {
	return &ReviewUsecase{
		reviews:   reviews,
		users:     users,
		products:  products,
		validator: validator,
	}
}

func (u *ReviewUsecase) List(ctx context.Context, q repo.ReviewListQuery) (PageResponse, error) {
	normalizePagination(&q.Pagination, defaultPerPage)
	reviews, total, err := u.reviews.List(ctx, q)
	if err != nil {
		return PageResponse{}, err
	}
	return PageResponse{Data: reviews, Meta: newListMeta(q.Pagination, total)}, nil
}

func (u *ReviewUsecase) Get(ctx context.Context, id int64) (model.Review, error) {
	review, err := u.reviews.FindByIDWithRelations(ctx, id)
	if err == repo.ErrNotFound {
		return model.Review{}, NewHTTPError(http.StatusNotFound, "Review not found")
	}
	return review, err
}

// Create は(user, product)につき1件の制約を守る。
func (u *ReviewUsecase) Create(ctx context.Context, in CreateReviewInput) (model.Review, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return model.Review{}, NewValidationError(errs)
	}

	fieldErrs := map[string]string{}
	ok, err := u.users.Exists(ctx, in.UserID)
	if err != nil {
		return model.Review{}, err
	}
	if !ok {
		fieldErrs["user_id"] = "The selected user_id is invalid."
	}
	ok, err = u.products.Exists(ctx, in.ProductID)
	if err != nil {
		return model.Review{}, err
	}
	if !ok {
		fieldErrs["product_id"] = "The selected product_id is invalid."
	}
	if len(fieldErrs) > 0 {
		return model.Review{}, NewValidationError(fieldErrs)
	}

	exists, err := u.reviews.ExistsForUserAndProduct(ctx, in.UserID, in.ProductID)
	if err != nil {
		return model.Review{}, err
	}
	if exists {
		return model.Review{}, NewHTTPError(http.StatusConflict, "User has already reviewed this product. Please update the existing review instead.")
	}

	review := model.Review{
		UserID:    in.UserID,
		ProductID: in.ProductID,
		Rating:    in.Rating,
		Review:    in.Review,
	}
	if err := u.reviews.Create(ctx, &review); err != nil {
		return model.Review{}, err
	}
	return review, nil
}

func (u *ReviewUsecase) Update(ctx context.Context, id int64, in UpdateReviewInput) (model.Review, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return model.Review{}, NewValidationError(errs)
	}

	review, err := u.reviews.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Review{}, NewHTTPError(http.StatusNotFound, "Review not found")
	}
	if err != nil {
		return model.Review{}, err
	}

	if in.Rating != nil {
		review.Rating = *in.Rating
	}
	if in.Review != nil {
		review.Review = in.Review
	}

	if err := u.reviews.Update(ctx, &review); err != nil {
		return model.Review{}, err
	}
	return review, nil
}

func (u *ReviewUsecase) Delete(ctx context.Context, id int64) error {
	err := u.reviews.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Review not found")
	}
	return err
}
