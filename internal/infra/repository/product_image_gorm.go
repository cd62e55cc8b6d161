package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type productImageGormRepository struct {
	db *gorm.DB
}

func NewProductImageGormRepository(db *gorm.DB) repo.ProductImageRepository {
	return &productImageGormRepository{db: db}
}

var productImageSortable = map[string]bool{
	"name":       true,
	"created_at": true,
}

func (r *productImageGormRepository) List(ctx context.Context, q repo.ProductImageListQuery) ([]model.ProductImage, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.ProductImage{})

	if q.ProductID != nil {
		db = db.Where("product_id = ?", *q.ProductID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var images []model.ProductImage
	db = applySort(db, q.Pagination, "created_at", "desc", productImageSortable)
	if err := applyPage(db, q.Pagination).Find(&images).Error; err != nil {
		return nil, 0, err
	}

	return images, total, nil
}

func (r *productImageGormRepository) FindByID(ctx context.Context, id int64) (model.ProductImage, error) {
	var img model.ProductImage
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&img).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ProductImage{}, repo.ErrNotFound
		}
		return model.ProductImage{}, err
	}
	return img, nil
}

func (r *productImageGormRepository) Create(ctx context.Context, image *model.ProductImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *productImageGormRepository) Update(ctx context.Context, image *model.ProductImage) error {
	return r.db.WithContext(ctx).Save(image).Error
}

func (r *productImageGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.ProductImage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *productImageGormRepository) ListByProductID(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	var images []model.ProductImage
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}
