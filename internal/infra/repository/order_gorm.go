package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type orderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) repo.OrderRepository {
	return &orderGormRepository{db: db}
}

var orderSortable = map[string]bool{
	"final_price": true,
	"order_date":  true,
	"created_at":  true,
}

func (r *orderGormRepository) List(ctx context.Context, q repo.OrderListQuery) ([]model.Order, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.Order{})

	if q.PaymentID != nil {
		db = db.Where("payment_id = ?", *q.PaymentID)
	}
	if q.CartID != nil {
		db = db.Where("cart_id = ?", *q.CartID)
	}
	if q.FromDate != "" {
		db = db.Where("order_date >= ?", q.FromDate)
	}
	if q.ToDate != "" {
		db = db.Where("order_date <= ?", q.ToDate)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.Order
	db = applySort(db, q.Pagination, "created_at", "desc", orderSortable)
	err := applyPage(db, q.Pagination).
		Preload("Cart.User").
		Preload("Cart.Product").
		Preload("Payment").
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderGormRepository) FindByID(ctx context.Context, id int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Cart.User").
		Preload("Cart.Product").
		Preload("Payment").
		Where("id = ?", id).
		First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Order{}, repo.ErrNotFound
		}
		return model.Order{}, err
	}
	return o, nil
}

func (r *orderGormRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderGormRepository) Update(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Order{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *orderGormRepository) CartHasOrder(ctx context.Context, cartID int64, excludeOrderID int64) (bool, error) {
	db := r.db.WithContext(ctx).Model(&model.Order{}).Where("cart_id = ?", cartID)
	if excludeOrderID > 0 {
		db = db.Where("id <> ?", excludeOrderID)
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *orderGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	// ユーザーのカートを先に引いてから注文を取る
	var cartIDs []int64
	err := r.db.WithContext(ctx).
		Model(&model.Cart{}).
		Where("user_id = ?", userID).
		Pluck("id", &cartIDs).Error
	if err != nil {
		return nil, err
	}
	if len(cartIDs) == 0 {
		return []model.Order{}, nil
	}

	var orders []model.Order
	err = r.db.WithContext(ctx).
		Preload("Cart.User").
		Preload("Cart.Product").
		Preload("Payment").
		Where("cart_id IN ?", cartIDs).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
