package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type CreateCartInput struct {
	UserID    int64 `json:"user_id" validate:"required,gt=0"`
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity" validate:"required,gte=1"`
}

type UpdateCartInput struct {
	ProductID *int64 `json:"product_id" validate:"omitempty,gt=0"`
	Quantity  *int64 `json:"quantity" validate:"omitempty,gte=1"`
}

type CartUsecase struct {
	carts     repo.CartRepository
	products  repo.ProductRepository
	users     repo.UserRepository
	validator StructValidator
}

func NewCartUsecase(
	carts repo.CartRepository,
	products repo.ProductRepository,
	users repo.UserRepository,
	validator StructValidator,
) *CartUsecase {
	return &CartUsecase{
		carts:     carts,
		products:  products,
		users:     users,
		validator: validator,
	}
}

func (u *CartUsecase) List(ctx context.Context, q repo.CartListQuery) (PageResponse, error) {
	normalizePagination(&q.Pagination, defaultPerPage)
	carts, total, err := u.carts.List(ctx, q)
	if err != nil {
		return PageResponse{}, err
	}
	return PageResponse{Data: carts, Meta: newListMeta(q.Pagination, total)}, nil
}

func (u *CartUsecase) Get(ctx context.Context, id int64) (model.Cart, error) {
	cart, err := u.carts.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Cart{}, NewHTTPError(http.StatusNotFound, "Cart not found")
	}
	return cart, err
}

// Create はtotal_priceを商品の現在価格から計算して固定する。
func (u *CartUsecase) Create(ctx context.Context, in CreateCartInput) (model.Cart, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return model.Cart{}, NewValidationError(errs)
	}

	ok, err := u.users.Exists(ctx, in.UserID)
	if err != nil {
		return model.Cart{}, err
	}
	if !ok {
		return model.Cart{}, NewValidationError(map[string]string{
			"user_id": "The selected user_id is invalid.",
		})
	}

	//商品が消えているなら書き込み前に404
	product, err := u.products.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return model.Cart{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return model.Cart{}, err
	}

	cart := model.Cart{
		Quantity:   in.Quantity,
		TotalPrice: product.Price.Mul(decimal.NewFromInt(in.Quantity)),
		ProductID:  in.ProductID,
		UserID:     in.UserID,
	}
	if err := u.carts.Create(ctx, &cart); err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// Update はquantity / product_idが来たときだけtotal_priceを再計算する。
// 商品価格だけ変わっても既存カートのスナップショットは触らない。
func (u *CartUsecase) Update(ctx context.Context, id int64, in UpdateCartInput) (model.Cart, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return model.Cart{}, NewValidationError(errs)
	}

	cart, err := u.carts.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Cart{}, NewHTTPError(http.StatusNotFound, "Cart not found")
	}
	if err != nil {
		return model.Cart{}, err
	}

	if in.ProductID != nil || in.Quantity != nil {
		productID := cart.ProductID
		if in.ProductID != nil {
			productID = *in.ProductID
		}
		quantity := cart.Quantity
		if in.Quantity != nil {
			quantity = *in.Quantity
		}

		product, err := u.products.FindByID(ctx, productID)
		if err == repo.ErrNotFound {
			return model.Cart{}, NewHTTPError(http.StatusNotFound, "Product not found")
		}
		if err != nil {
			return model.Cart{}, err
		}

		cart.ProductID = productID
		cart.Quantity = quantity
		cart.TotalPrice = product.Price.Mul(decimal.NewFromInt(quantity))
	}

	//preloadしたままUpdateに渡さない
	cart.Product = nil
	cart.User = nil
	cart.Order = nil

	if err := u.carts.Update(ctx, &cart); err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// Delete は注文が付いたカートを409で守る。
func (u *CartUsecase) Delete(ctx context.Context, id int64) error {
	ok, err := u.carts.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return NewHTTPError(http.StatusNotFound, "Cart not found")
	}

	has, err := u.carts.HasOrder(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return NewHTTPError(http.StatusConflict, "Cannot delete cart with existing orders")
	}

	return u.carts.Delete(ctx, id)
}
