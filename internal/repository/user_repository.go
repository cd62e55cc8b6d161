package repository

import (
	"context"

	"app/internal/domain/model"
)

type UserListQuery struct {
	Pagination
	Name     string
	Email    string
	Address  string
	FromDate string
	ToDate   string
}

// ユーザーの保存・取得を約束
type UserRepository interface {
	List(ctx context.Context, q UserListQuery) ([]model.User, int64, error)
	ListAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByIDWithRoles(ctx context.Context, id int64) (model.User, error)
	FindByIDWithReviews(ctx context.Context, id int64) (model.User, error)
	FindByIDWithCarts(ctx context.Context, id int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	// 重複チェック（excludeID>0なら自分自身は除外）
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
	// ロール集合をまるごと置き換える（マージしない）
	ReplaceRoles(ctx context.Context, user *model.User, roles []model.Role) error
	AttachRole(ctx context.Context, user *model.User, role model.Role) error
}

// 静的参照データ（admin / customer / seller）
type RoleRepository interface {
	ListAll(ctx context.Context) ([]model.Role, error)
	FindByName(ctx context.Context, name string) (model.Role, error)
	ListByNames(ctx context.Context, names []string) ([]model.Role, error)
	Create(ctx context.Context, role *model.Role) error
}
