package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

const orderDateLayout = "2006-01-02"

type CreateOrderInput struct {
	FinalPrice decimal.Decimal `json:"final_price" validate:"required"`
	CartID     int64           `json:"cart_id" validate:"required,gt=0"`
	PaymentID  int64           `json:"payment_id" validate:"required,gt=0"`
	OrderDate  string          `json:"order_date" validate:"required"`
}

type UpdateOrderInput struct {
	FinalPrice *decimal.Decimal `json:"final_price"`
	CartID     *int64           `json:"cart_id" validate:"omitempty,gt=0"`
	PaymentID  *int64           `json:"payment_id" validate:"omitempty,gt=0"`
	OrderDate  *string          `json:"order_date"`
}

type OrderUsecase struct {
	orders    repo.OrderRepository
	carts     repo.CartRepository
	payments  repo.PaymentRepository
	tx        repo.TransactionManager
	validator StructValidator
}

func NewOrderUsecase(
	orders repo.OrderRepository,
	carts repo.CartRepository,
	payments repo.PaymentRepository,
	tx repo.TransactionManager,
	validator StructValidator,
) *OrderUsecase {
	return &OrderUsecase{
		orders:    orders,
		carts:     carts,
		payments:  payments,
		tx:        tx,
		validator: validator,
	}
}

func (u *OrderUsecase) List(ctx context.Context, q repo.OrderListQuery) (PageResponse, error) {
	normalizePagination(&q.Pagination, defaultPerPage)
	orders, total, err := u.orders.List(ctx, q)
	if err != nil {
		return PageResponse{}, err
	}
	return PageResponse{Data: orders, Meta: newListMeta(q.Pagination, total)}, nil
}

func (u *OrderUsecase) Get(ctx context.Context, id int64) (model.Order, error) {
	order, err := u.orders.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "Order not found")
	}
	return order, err
}

// Create は「1カート1注文」チェックと挿入を同一トランザクションで行う。
// orders.cart_idのunique indexが最後の砦。
func (u *OrderUsecase) Create(ctx context.Context, in CreateOrderInput) (model.Order, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return model.Order{}, NewValidationError(errs)
	}
	if in.FinalPrice.IsNegative() {
		return model.Order{}, NewValidationError(map[string]string{
			"final_price": "The final_price must be at least 0.",
		})
	}

	orderDate, err := time.Parse(orderDateLayout, in.OrderDate)
	if err != nil {
		return model.Order{}, NewValidationError(map[string]string{
			"order_date": "The order_date is not a valid date.",
		})
	}

	order := model.Order{
		FinalPrice: in.FinalPrice,
		CartID:     in.CartID,
		PaymentID:  in.PaymentID,
		OrderDate:  orderDate,
	}

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		ok, err := r.Carts().Exists(ctx, in.CartID)
		if err != nil {
			return err
		}
		if !ok {
			return NewValidationError(map[string]string{
				"cart_id": "The selected cart_id is invalid.",
			})
		}

		ok, err = r.Payments().Exists(ctx, in.PaymentID)
		if err != nil {
			return err
		}
		if !ok {
			return NewValidationError(map[string]string{
				"payment_id": "The selected payment_id is invalid.",
			})
		}

		taken, err := r.Orders().CartHasOrder(ctx, in.CartID, 0)
		if err != nil {
			return err
		}
		if taken {
			return NewHTTPError(http.StatusConflict, "This cart already has an associated order")
		}

		return r.Orders().Create(ctx, &order)
	})
	if err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (u *OrderUsecase) Update(ctx context.Context, id int64, in UpdateOrderInput) (model.Order, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return model.Order{}, NewValidationError(errs)
	}
	if in.FinalPrice != nil && in.FinalPrice.IsNegative() {
		return model.Order{}, NewValidationError(map[string]string{
			"final_price": "The final_price must be at least 0.",
		})
	}

	var orderDate *time.Time
	if in.OrderDate != nil {
		t, err := time.Parse(orderDateLayout, *in.OrderDate)
		if err != nil {
			return model.Order{}, NewValidationError(map[string]string{
				"order_date": "The order_date is not a valid date.",
			})
		}
		orderDate = &t
	}

	var order model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		order, err = r.Orders().FindByID(ctx, id)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return err
		}

		if in.CartID != nil && *in.CartID != order.CartID {
			ok, err := r.Carts().Exists(ctx, *in.CartID)
			if err != nil {
				return err
			}
			if !ok {
				return NewValidationError(map[string]string{
					"cart_id": "The selected cart_id is invalid.",
				})
			}

			//付け替え先のカートに別の注文が付いていないか（自分自身は除く）
			taken, err := r.Orders().CartHasOrder(ctx, *in.CartID, id)
			if err != nil {
				return err
			}
			if taken {
				return NewHTTPError(http.StatusConflict, "This cart already has an associated order")
			}
			order.CartID = *in.CartID
		}

		if in.PaymentID != nil {
			ok, err := r.Payments().Exists(ctx, *in.PaymentID)
			if err != nil {
				return err
			}
			if !ok {
				return NewValidationError(map[string]string{
					"payment_id": "The selected payment_id is invalid.",
				})
			}
			order.PaymentID = *in.PaymentID
		}
		if in.FinalPrice != nil {
			order.FinalPrice = *in.FinalPrice
		}
		if orderDate != nil {
			order.OrderDate = *orderDate
		}

		order.Cart = nil
		order.Payment = nil

		return r.Orders().Update(ctx, &order)
	})
	if err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (u *OrderUsecase) Delete(ctx context.Context, id int64) error {
	err := u.orders.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Order not found")
	}
	return err
}
