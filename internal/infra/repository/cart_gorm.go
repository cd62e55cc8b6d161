package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type cartGormRepository struct {
	db *gorm.DB
}

func NewCartGormRepository(db *gorm.DB) repo.CartRepository {
	return &cartGormRepository{db: db}
}

var cartSortable = map[string]bool{
	"quantity":    true,
	"total_price": true,
	"created_at":  true,
}

func (r *cartGormRepository) List(ctx context.Context, q repo.CartListQuery) ([]model.Cart, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.Cart{})

	if q.UserID != nil {
		db = db.Where("user_id = ?", *q.UserID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var carts []model.Cart
	db = applySort(db, q.Pagination, "created_at", "desc", cartSortable)
	err := applyPage(db, q.Pagination).
		Preload("User").
		Preload("Product").
		Preload("Order").
		Find(&carts).Error
	if err != nil {
		return nil, 0, err
	}

	return carts, total, nil
}

func (r *cartGormRepository) FindByID(ctx context.Context, id int64) (model.Cart, error) {
	var c model.Cart
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Product").
		Preload("Order").
		Where("id = ?", id).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Cart{}, repo.ErrNotFound
		}
		return model.Cart{}, err
	}
	return c, nil
}

func (r *cartGormRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Cart{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *cartGormRepository) Create(ctx context.Context, cart *model.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *cartGormRepository) Update(ctx context.Context, cart *model.Cart) error {
	return r.db.WithContext(ctx).Save(cart).Error
}

func (r *cartGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Cart{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *cartGormRepository) HasOrder(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Where("cart_id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *cartGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Cart, error) {
	var carts []model.Cart
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Find(&carts).Error
	if err != nil {
		return nil, err
	}
	return carts, nil
}
