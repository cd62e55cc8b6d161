package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type userGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewUserGormRepository(db *gorm.DB) repo.UserRepository {
	return &userGormRepository{db: db}
}

var userSortable = map[string]bool{
	"name":       true,
	"email":      true,
	"created_at": true,
}

func (r *userGormRepository) List(ctx context.Context, q repo.UserListQuery) ([]model.User, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.User{})

	if q.Name != "" {
		db = db.Where("name LIKE ?", "%"+q.Name+"%")
	}
	if q.Email != "" {
		db = db.Where("email LIKE ?", "%"+q.Email+"%")
	}
	if q.Address != "" {
		db = db.Where("address LIKE ?", "%"+q.Address+"%")
	}
	if q.FromDate != "" {
		db = db.Where("created_at >= ?", q.FromDate)
	}
	if q.ToDate != "" {
		db = db.Where("created_at <= ?", q.ToDate)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	db = applySort(db, q.Pagination, "name", "asc", userSortable)
	if err := applyPage(db, q.Pagination).Preload("Roles").Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *userGormRepository) ListAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Preload("Roles").Order("name asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userGormRepository) FindByID(ctx context.Context, id int64) (model.User, error) {
	return r.findOne(ctx, r.db.WithContext(ctx), id)
}

func (r *userGormRepository) FindByIDWithRoles(ctx context.Context, id int64) (model.User, error) {
	return r.findOne(ctx, r.db.WithContext(ctx).Preload("Roles"), id)
}

func (r *userGormRepository) FindByIDWithReviews(ctx context.Context, id int64) (model.User, error) {
	return r.findOne(ctx, r.db.WithContext(ctx).Preload("Roles").Preload("Reviews"), id)
}

func (r *userGormRepository) FindByIDWithCarts(ctx context.Context, id int64) (model.User, error) {
	return r.findOne(ctx, r.db.WithContext(ctx).Preload("Roles").Preload("Carts"), id)
}

func (r *userGormRepository) findOne(ctx context.Context, db *gorm.DB, id int64) (model.User, error) {
	var u model.User
	err := db.Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, repo.ErrNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

func (r *userGormRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Preload("Roles").Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, repo.ErrNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

func (r *userGormRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	db := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email)
	if excludeID > 0 {
		db = db.Where("id <> ?", excludeID)
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userGormRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userGormRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userGormRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	// 0件削除は「対象がない」
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// ロール集合の置き換え（既存は外れる）
func (r *userGormRepository) ReplaceRoles(ctx context.Context, user *model.User, roles []model.Role) error {
	return r.db.WithContext(ctx).Model(user).Association("Roles").Replace(roles)
}

func (r *userGormRepository) AttachRole(ctx context.Context, user *model.User, role model.Role) error {
	return r.db.WithContext(ctx).Model(user).Association("Roles").Append(&role)
}
