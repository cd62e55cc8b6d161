package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type reviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) repo.ReviewRepository {
	return &reviewGormRepository{db: db}
}

var reviewSortable = map[string]bool{
	"rating":     true,
	"created_at": true,
}

func (r *reviewGormRepository) List(ctx context.Context, q repo.ReviewListQuery) ([]model.Review, int64, error) {
	db := r.applyFilters(r.db.WithContext(ctx).Model(&model.Review{}), q)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []model.Review
	db = applySort(db, q.Pagination, "created_at", "desc", reviewSortable)
	err := applyPage(db, q.Pagination).
		Preload("User").
		Preload("Product").
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *reviewGormRepository) applyFilters(db *gorm.DB, q repo.ReviewListQuery) *gorm.DB {
	if q.Rating != nil {
		db = db.Where("rating = ?", *q.Rating)
	}
	if q.FromDate != "" {
		db = db.Where("created_at >= ?", q.FromDate)
	}
	if q.ToDate != "" {
		db = db.Where("created_at <= ?", q.ToDate)
	}
	return db
}

func (r *reviewGormRepository) FindByID(ctx context.Context, id int64) (model.Review, error) {
	var rv model.Review
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Review{}, repo.ErrNotFound
		}
		return model.Review{}, err
	}
	return rv, nil
}

func (r *reviewGormRepository) FindByIDWithRelations(ctx context.Context, id int64) (model.Review, error) {
	var rv model.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Product").
		Where("id = ?", id).
		First(&rv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Review{}, repo.ErrNotFound
		}
		return model.Review{}, err
	}
	return rv, nil
}

func (r *reviewGormRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewGormRepository) Update(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewGormRepository) Delete(ctx context.Context, id int64) error {
	// soft delete（DeletedAtが立つ）
	res := r.db.WithContext(ctx).Delete(&model.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *reviewGormRepository) ListByProductID(ctx context.Context, productID int64, q repo.ReviewListQuery) ([]model.Review, int64, error) {
	db := r.applyFilters(
		r.db.WithContext(ctx).Model(&model.Review{}).Where("product_id = ?", productID), q)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []model.Review
	db = applySort(db, q.Pagination, "created_at", "desc", reviewSortable)
	if err := applyPage(db, q.Pagination).Preload("User").Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *reviewGormRepository) ListByUserID(ctx context.Context, userID int64, q repo.ReviewListQuery) ([]model.Review, int64, error) {
	db := r.applyFilters(
		r.db.WithContext(ctx).Model(&model.Review{}).Where("user_id = ?", userID), q)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []model.Review
	db = applySort(db, q.Pagination, "created_at", "desc", reviewSortable)
	if err := applyPage(db, q.Pagination).Preload("Product").Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *reviewGormRepository) AverageRatingForProduct(ctx context.Context, productID int64) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Where("product_id = ?", productID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	// レビュー0件はavgがNULL
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *reviewGormRepository) ExistsForUserAndProduct(ctx context.Context, userID int64, productID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
