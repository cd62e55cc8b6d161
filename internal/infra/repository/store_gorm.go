package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type storeGormRepository struct {
	db *gorm.DB
}

func NewStoreGormRepository(db *gorm.DB) repo.StoreRepository {
	return &storeGormRepository{db: db}
}

var storeSortable = map[string]bool{
	"name":       true,
	"city":       true,
	"created_at": true,
}

func (r *storeGormRepository) List(ctx context.Context, q repo.StoreListQuery) ([]model.Store, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.Store{})

	if q.Name != "" {
		db = db.Where("name LIKE ?", "%"+q.Name+"%")
	}
	if q.City != "" {
		db = db.Where("city LIKE ?", "%"+q.City+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var stores []model.Store
	db = applySort(db, q.Pagination, "name", "asc", storeSortable)
	if err := applyPage(db, q.Pagination).Find(&stores).Error; err != nil {
		return nil, 0, err
	}

	return stores, total, nil
}

func (r *storeGormRepository) ListAll(ctx context.Context) ([]model.Store, error) {
	var stores []model.Store
	if err := r.db.WithContext(ctx).Order("name asc").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *storeGormRepository) FindByID(ctx context.Context, id int64) (model.Store, error) {
	var s model.Store
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Store{}, repo.ErrNotFound
		}
		return model.Store{}, err
	}
	return s, nil
}

func (r *storeGormRepository) FindByIDWithProducts(ctx context.Context, id int64) (model.Store, error) {
	var s model.Store
	err := r.db.WithContext(ctx).Preload("Products").Where("id = ?", id).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Store{}, repo.ErrNotFound
		}
		return model.Store{}, err
	}
	return s, nil
}

func (r *storeGormRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Store{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *storeGormRepository) Create(ctx context.Context, store *model.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeGormRepository) Update(ctx context.Context, store *model.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

func (r *storeGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Store{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *storeGormRepository) SearchByName(ctx context.Context, name string, p repo.Pagination) ([]model.Store, int64, error) {
	return r.List(ctx, repo.StoreListQuery{Pagination: p, Name: name})
}

func (r *storeGormRepository) ListByCity(ctx context.Context, city string, p repo.Pagination) ([]model.Store, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.Store{}).Where("city = ?", city)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var stores []model.Store
	db = applySort(db, p, "name", "asc", storeSortable)
	if err := applyPage(db, p).Find(&stores).Error; err != nil {
		return nil, 0, err
	}

	return stores, total, nil
}
