package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProductUsecase(products *MockProductRepository, stores *MockStoreRepository, categories *MockCategoryRepository, reviews *MockReviewRepository) *usecase.ProductUsecase {
	images := new(MockProductImageRepository)
	return usecase.NewProductUsecase(products, stores, categories, images, reviews, validator.New())
}

func TestProductCreate_MissingReferencesAreFieldErrors(t *testing.T) {
	products := new(MockProductRepository)
	stores := new(MockStoreRepository)
	categories := new(MockCategoryRepository)
	uc := newProductUsecase(products, stores, categories, new(MockReviewRepository))

	stores.On("Exists", mock.Anything, int64(5)).Return(false, nil)
	categories.On("Exists", mock.Anything, int64(9)).Return(false, nil)

	_, err := uc.Create(context.Background(), usecase.CreateProductInput{
		Name:       "Keyboard",
		Stock:      10,
		Price:      decimal.RequireFromString("4980.00"),
		StoreID:    5,
		CategoryID: 9,
	})

	ve, ok := usecase.AsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "The selected store_id is invalid.", ve.Errors["store_id"])
	assert.Equal(t, "The selected category_id is invalid.", ve.Errors["category_id"])
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductCreate_DefaultsToActive(t *testing.T) {
	products := new(MockProductRepository)
	stores := new(MockStoreRepository)
	categories := new(MockCategoryRepository)
	uc := newProductUsecase(products, stores, categories, new(MockReviewRepository))

	stores.On("Exists", mock.Anything, int64(5)).Return(true, nil)
	categories.On("Exists", mock.Anything, int64(9)).Return(true, nil)
	products.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)

	product, err := uc.Create(context.Background(), usecase.CreateProductInput{
		Name:       "Keyboard",
		Stock:      10,
		Price:      decimal.RequireFromString("4980.00"),
		StoreID:    5,
		CategoryID: 9,
	})

	assert.NoError(t, err)
	assert.Equal(t, model.ProductStatusActive, product.Status)
}

func TestProductListReviews_IncludesAverageRating(t *testing.T) {
	products := new(MockProductRepository)
	stores := new(MockStoreRepository)
	categories := new(MockCategoryRepository)
	reviews := new(MockReviewRepository)
	uc := newProductUsecase(products, stores, categories, reviews)

	products.On("Exists", mock.Anything, int64(3)).Return(true, nil)
	reviews.On("ListByProductID", mock.Anything, int64(3), mock.Anything).Return([]model.Review{
		{ID: 1, ProductID: 3, Rating: 5},
		{ID: 2, ProductID: 3, Rating: 4},
	}, int64(2), nil)
	reviews.On("AverageRatingForProduct", mock.Anything, int64(3)).Return(4.5, nil)

	out, err := uc.ListReviews(context.Background(), 3, repo.ReviewListQuery{})

	assert.NoError(t, err)
	assert.Equal(t, 4.5, out.AverageRating)
	//ネストした一覧のデフォルトは10件
	assert.Equal(t, 10, out.Meta.PerPage)
	assert.Equal(t, int64(2), out.Meta.Total)
}
