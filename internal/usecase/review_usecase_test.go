package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newReviewUsecase(reviews *MockReviewRepository, users *MockUserRepository, products *MockProductRepository) *usecase.ReviewUsecase {
	return usecase.NewReviewUsecase(reviews, users, products, validator.New())
}

func TestReviewCreate_Succeeds(t *testing.T) {
	reviews := new(MockReviewRepository)
	users := new(MockUserRepository)
	products := new(MockProductRepository)
	uc := newReviewUsecase(reviews, users, products)

	users.On("Exists", mock.Anything, int64(7)).Return(true, nil)
	products.On("Exists", mock.Anything, int64(3)).Return(true, nil)
	reviews.On("ExistsForUserAndProduct", mock.Anything, int64(7), int64(3)).Return(false, nil)
	reviews.On("Create", mock.Anything, mock.AnythingOfType("*model.Review")).Return(nil)

	body := "Great product"
	review, err := uc.Create(context.Background(), usecase.CreateReviewInput{
		UserID:    7,
		ProductID: 3,
		Rating:    5,
		Review:    &body,
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	reviews.AssertExpectations(t)
}

func TestReviewCreate_DuplicateIsConflict(t *testing.T) {
	reviews := new(MockReviewRepository)
	users := new(MockUserRepository)
	products := new(MockProductRepository)
	uc := newReviewUsecase(reviews, users, products)

	users.On("Exists", mock.Anything, int64(7)).Return(true, nil)
	products.On("Exists", mock.Anything, int64(3)).Return(true, nil)
	reviews.On("ExistsForUserAndProduct", mock.Anything, int64(7), int64(3)).Return(true, nil)

	_, err := uc.Create(context.Background(), usecase.CreateReviewInput{
		UserID:    7,
		ProductID: 3,
		Rating:    4,
	})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
	assert.Equal(t, "User has already reviewed this product. Please update the existing review instead.", he.Message)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewCreate_RatingOutOfRangeIsFieldError(t *testing.T) {
	reviews := new(MockReviewRepository)
	users := new(MockUserRepository)
	products := new(MockProductRepository)
	uc := newReviewUsecase(reviews, users, products)

	_, err := uc.Create(context.Background(), usecase.CreateReviewInput{
		UserID:    7,
		ProductID: 3,
		Rating:    6,
	})

	ve, ok := usecase.AsValidationError(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Errors, "rating")
}

func TestReviewUpdate_OnlyRatingAndBodyChange(t *testing.T) {
	reviews := new(MockReviewRepository)
	users := new(MockUserRepository)
	products := new(MockProductRepository)
	uc := newReviewUsecase(reviews, users, products)

	old := "ok"
	reviews.On("FindByID", mock.Anything, int64(1)).Return(model.Review{
		ID:        1,
		UserID:    7,
		ProductID: 3,
		Rating:    2,
		Review:    &old,
	}, nil)
	reviews.On("Update", mock.Anything, mock.AnythingOfType("*model.Review")).Return(nil)

	rating := 4
	review, err := uc.Update(context.Background(), 1, usecase.UpdateReviewInput{Rating: &rating})

	assert.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
	//本文を送っていないなら据え置き
	assert.Equal(t, &old, review.Review)
	//user/productの付け替えはできない
	assert.Equal(t, int64(7), review.UserID)
	assert.Equal(t, int64(3), review.ProductID)
}
