package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type CreateUserInput struct {
	Name         string  `json:"name" validate:"required,max=255"`
	Email        string  `json:"email" validate:"required,email,max=255"`
	Password     string  `json:"password" validate:"required,min=8"`
	Address      *string `json:"address" validate:"omitempty,max=500"`
	ProfileImage *string `json:"profile_image" validate:"omitempty,max=2048"`
}

// 部分更新なので全部ポインタ。nilのフィールドは触らない。
type UpdateUserInput struct {
	Name         *string `json:"name" validate:"omitempty,max=255"`
	Email        *string `json:"email" validate:"omitempty,email,max=255"`
	Password     *string `json:"password" validate:"omitempty,min=8"`
	Address      *string `json:"address" validate:"omitempty,max=500"`
	ProfileImage *string `json:"profile_image" validate:"omitempty,max=2048"`
}

type UpdateUserRolesInput struct {
	Roles []string `json:"roles" validate:"required,min=1,dive,required"`
}

type UserUsecase struct {
	users     repo.UserRepository
	roles     repo.RoleRepository
	carts     repo.CartRepository
	orders    repo.OrderRepository
	reviews   repo.ReviewRepository
	tx        repo.TransactionManager
	validator StructValidator
}

func NewUserUsecase(
	users repo.UserRepository,
	roles repo.RoleRepository,
	carts repo.CartRepository,
	orders repo.OrderRepository,
	reviews repo.ReviewRepository,
	tx repo.TransactionManager,
	validator StructValidator,
) *UserUsecase {
	return &UserUsecase{
		users:     users,
		roles:     roles,
		carts:     carts,
		orders:    orders,
		reviews:   reviews,
		tx:        tx,
		validator: validator,
	}
}

func (u *UserUsecase) List(ctx context.Context, q repo.UserListQuery) (PageResponse, error) {
	normalizePagination(&q.Pagination, defaultPerPage)
	users, total, err := u.users.List(ctx, q)
	if err != nil {
		return PageResponse{}, err
	}
	return PageResponse{Data: users, Meta: newListMeta(q.Pagination, total)}, nil
}

// ListAll はクエリパラメータ無しのGET /users（従来どおり素の配列を返す）。
func (u *UserUsecase) ListAll(ctx context.Context) ([]model.User, error) {
	return u.users.ListAll(ctx)
}

func (u *UserUsecase) Get(ctx context.Context, id int64) (model.User, error) {
	user, err := u.users.FindByIDWithRoles(ctx, id)
	if err == repo.ErrNotFound {
		return model.User{}, NewHTTPError(http.StatusNotFound, "User not found")
	}
	return user, err
}

func (u *UserUsecase) Create(ctx context.Context, in CreateUserInput) (model.User, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return model.User{}, NewValidationError(errs)
	}

	taken, err := u.users.EmailExists(ctx, in.Email, 0)
	if err != nil {
		return model.User{}, err
	}
	if taken {
		return model.User{}, NewValidationError(map[string]string{
			"email": "The email has already been taken.",
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}

	user := model.User{
		Name:         in.Name,
		Email:        in.Email,
		Password:     string(hash),
		Address:      in.Address,
		ProfileImage: in.ProfileImage,
	}
	if err := u.users.Create(ctx, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (u *UserUsecase) Update(ctx context.Context, id int64, in UpdateUserInput) (model.User, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return model.User{}, NewValidationError(errs)
	}

	user, err := u.users.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.User{}, NewHTTPError(http.StatusNotFound, "User not found")
	}
	if err != nil {
		return model.User{}, err
	}

	if in.Email != nil && *in.Email != user.Email {
		//自分自身は除いて重複チェック
		taken, err := u.users.EmailExists(ctx, *in.Email, id)
		if err != nil {
			return model.User{}, err
		}
		if taken {
			return model.User{}, NewValidationError(map[string]string{
				"email": "The email has already been taken.",
			})
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return model.User{}, err
		}
		user.Password = string(hash)
	}
	if in.Address != nil {
		user.Address = in.Address
	}
	if in.ProfileImage != nil {
		user.ProfileImage = in.ProfileImage
	}

	if err := u.users.Update(ctx, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (u *UserUsecase) Delete(ctx context.Context, id int64) error {
	err := u.users.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "User not found")
	}
	return err
}

// UpdateRoles はロール集合をまるごと置き換える（admin専用ルート）。
func (u *UserUsecase) UpdateRoles(ctx context.Context, id int64, in UpdateUserRolesInput) (model.User, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return model.User{}, NewValidationError(errs)
	}

	var user model.User
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		user, err = r.Users().FindByID(ctx, id)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "User not found")
		}
		if err != nil {
			return err
		}

		roles, err := r.Roles().ListByNames(ctx, in.Roles)
		if err != nil {
			return err
		}
		if len(roles) != len(uniqueStrings(in.Roles)) {
			return NewValidationError(map[string]string{
				"roles": "The selected roles is invalid.",
			})
		}

		return r.Users().ReplaceRoles(ctx, &user, roles)
	})
	if err != nil {
		return model.User{}, err
	}

	return u.users.FindByIDWithRoles(ctx, id)
}

func (u *UserUsecase) GetWithReviews(ctx context.Context, id int64) (model.User, error) {
	user, err := u.users.FindByIDWithReviews(ctx, id)
	if err == repo.ErrNotFound {
		return model.User{}, NewHTTPError(http.StatusNotFound, "User not found")
	}
	return user, err
}

func (u *UserUsecase) GetWithCarts(ctx context.Context, id int64) (model.User, error) {
	user, err := u.users.FindByIDWithCarts(ctx, id)
	if err == repo.ErrNotFound {
		return model.User{}, NewHTTPError(http.StatusNotFound, "User not found")
	}
	return user, err
}

func (u *UserUsecase) ListCarts(ctx context.Context, userID int64) ([]model.Cart, error) {
	if err := u.mustExist(ctx, userID); err != nil {
		return nil, err
	}
	return u.carts.ListByUserID(ctx, userID)
}

func (u *UserUsecase) ListOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	if err := u.mustExist(ctx, userID); err != nil {
		return nil, err
	}
	return u.orders.ListByUserID(ctx, userID)
}

func (u *UserUsecase) ListReviews(ctx context.Context, userID int64, q repo.ReviewListQuery) (PageResponse, error) {
	if err := u.mustExist(ctx, userID); err != nil {
		return PageResponse{}, err
	}
	normalizePagination(&q.Pagination, defaultNestedPerPage)
	reviews, total, err := u.reviews.ListByUserID(ctx, userID, q)
	if err != nil {
		return PageResponse{}, err
	}
	return PageResponse{Data: reviews, Meta: newListMeta(q.Pagination, total)}, nil
}

func (u *UserUsecase) SearchByName(ctx context.Context, name string, p repo.Pagination) (PageResponse, error) {
	normalizePagination(&p, defaultNestedPerPage)
	q := repo.UserListQuery{Pagination: p, Name: name}
	users, total, err := u.users.List(ctx, q)
	if err != nil {
		return PageResponse{}, err
	}
	return PageResponse{Data: users, Meta: newListMeta(p, total)}, nil
}

func (u *UserUsecase) SearchByEmail(ctx context.Context, email string, p repo.Pagination) (PageResponse, error) {
	normalizePagination(&p, defaultNestedPerPage)
	q := repo.UserListQuery{Pagination: p, Email: email}
	users, total, err := u.users.List(ctx, q)
	if err != nil {
		return PageResponse{}, err
	}
	return PageResponse{Data: users, Meta: newListMeta(p, total)}, nil
}

func (u *UserUsecase) mustExist(ctx context.Context, userID int64) error {
	ok, err := u.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return NewHTTPError(http.StatusNotFound, "User not found")
	}
	return nil
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
