package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type accessTokenGormRepository struct {
	db *gorm.DB
}

func NewAccessTokenGormRepository(db *gorm.DB) repo.AccessTokenRepository {
	return &accessTokenGormRepository{db: db}
}

func (r *accessTokenGormRepository) Create(ctx context.Context, token *model.AccessToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *accessTokenGormRepository) FindByTokenHash(ctx context.Context, hash string) (model.AccessToken, error) {
	var t model.AccessToken
	err := r.db.WithContext(ctx).Where("token_hash = ?", hash).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.AccessToken{}, repo.ErrNotFound
		}
		return model.AccessToken{}, err
	}
	return t, nil
}

func (r *accessTokenGormRepository) DeleteAllByUserID(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.AccessToken{}).Error
}
