package repository

import (
	"context"

	"app/internal/domain/model"
)

// 発行済みbearer tokenの保存・失効を約束
type AccessTokenRepository interface {
	Create(ctx context.Context, token *model.AccessToken) error
	FindByTokenHash(ctx context.Context, hash string) (model.AccessToken, error)
	// logout/refreshはユーザーのtokenを全削除する
	DeleteAllByUserID(ctx context.Context, userID int64) error
}
