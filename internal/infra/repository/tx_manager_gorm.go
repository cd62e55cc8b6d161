package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	users    repo.UserRepository
	roles    repo.RoleRepository
	carts    repo.CartRepository
	orders   repo.OrderRepository
	payments repo.PaymentRepository
}

func (r *txReposGorm) Users() repo.UserRepository       { return r.users }
func (r *txReposGorm) Roles() repo.RoleRepository       { return r.roles }
func (r *txReposGorm) Carts() repo.CartRepository       { return r.carts }
func (r *txReposGorm) Orders() repo.OrderRepository     { return r.orders }
func (r *txReposGorm) Payments() repo.PaymentRepository { return r.payments }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			users:    NewUserGormRepository(tx),
			roles:    NewRoleGormRepository(tx),
			carts:    NewCartGormRepository(tx),
			orders:   NewOrderGormRepository(tx),
			payments: NewPaymentGormRepository(tx),
		}
		return fn(r)
	})
}
