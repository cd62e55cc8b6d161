package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type roleGormRepository struct {
	db *gorm.DB
}

func NewRoleGormRepository(db *gorm.DB) repo.RoleRepository {
	return &roleGormRepository{db: db}
}

func (r *roleGormRepository) ListAll(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	if err := r.db.WithContext(ctx).Order("name asc").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *roleGormRepository) FindByName(ctx context.Context, name string) (model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Role{}, repo.ErrNotFound
		}
		return model.Role{}, err
	}
	return role, nil
}

func (r *roleGormRepository) ListByNames(ctx context.Context, names []string) ([]model.Role, error) {
	var roles []model.Role
	if err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *roleGormRepository) Create(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}
