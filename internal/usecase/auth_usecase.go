package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenName = "api"

type RegisterInput struct {
	Name                 string  `json:"name" validate:"required,max=255"`
	Email                string  `json:"email" validate:"required,email,max=255"`
	Password             string  `json:"password" validate:"required,min=8"`
	PasswordConfirmation string  `json:"password_confirmation" validate:"required,eqfield=Password"`
	Address              *string `json:"address" validate:"omitempty,max=500"`
	ProfileImage         *string `json:"profile_image" validate:"omitempty,max=2048"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

type AuthUsecase struct {
	cfg       config.Config
	users     repo.UserRepository
	roles     repo.RoleRepository
	tokens    repo.AccessTokenRepository
	tx        repo.TransactionManager
	validator StructValidator
}

func NewAuthUsecase(
	cfg config.Config,
	users repo.UserRepository,
	roles repo.RoleRepository,
	tokens repo.AccessTokenRepository,
	tx repo.TransactionManager,
	validator StructValidator,
) *AuthUsecase {
	return &AuthUsecase{
		cfg:       cfg,
		users:     users,
		roles:     roles,
		tokens:    tokens,
		tx:        tx,
		validator: validator,
	}
}

// Register はユーザー作成とcustomerロール付与を1トランザクションで行う。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (AuthResponse, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return AuthResponse{}, NewValidationError(errs)
	}

	taken, err := u.users.EmailExists(ctx, in.Email, 0)
	if err != nil {
		return AuthResponse{}, err
	}
	if taken {
		return AuthResponse{}, NewValidationError(map[string]string{
			"email": "The email has already been taken.",
		})
	}

	//平文では保存しない
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	user := model.User{
		Name:         in.Name,
		Email:        in.Email,
		Password:     string(hash),
		Address:      in.Address,
		ProfileImage: in.ProfileImage,
	}

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Users().Create(ctx, &user); err != nil {
			return err
		}

		role, err := r.Roles().FindByName(ctx, model.RoleCustomer)
		if err == repo.ErrNotFound {
			//seed前でも登録は通す
			role = model.Role{Name: model.RoleCustomer, Description: "Regular customer"}
			if err := r.Roles().Create(ctx, &role); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		return r.Users().AttachRole(ctx, &user, role)
	})
	if err != nil {
		return AuthResponse{}, err
	}

	user, err = u.users.FindByIDWithRoles(ctx, user.ID)
	if err != nil {
		return AuthResponse{}, err
	}

	token, err := u.issueToken(ctx, user)
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{User: user, Token: token}, nil
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (AuthResponse, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return AuthResponse{}, NewValidationError(errs)
	}

	user, err := u.users.FindByEmail(ctx, in.Email)
	if err == repo.ErrNotFound {
		return AuthResponse{}, NewHTTPError(http.StatusUnauthorized, "The provided credentials are incorrect.")
	}
	if err != nil {
		return AuthResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)) != nil {
		return AuthResponse{}, NewHTTPError(http.StatusUnauthorized, "The provided credentials are incorrect.")
	}

	user, err = u.users.FindByIDWithRoles(ctx, user.ID)
	if err != nil {
		return AuthResponse{}, err
	}

	token, err := u.issueToken(ctx, user)
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{User: user, Token: token}, nil
}

// Logout は本人のtokenを全部失効させる。
func (u *AuthUsecase) Logout(ctx context.Context, userID int64) error {
	return u.tokens.DeleteAllByUserID(ctx, userID)
}

// Refresh は全失効してから新しいtokenを1本だけ発行する。
func (u *AuthUsecase) Refresh(ctx context.Context, userID int64) (AuthResponse, error) {
	if err := u.tokens.DeleteAllByUserID(ctx, userID); err != nil {
		return AuthResponse{}, err
	}

	user, err := u.users.FindByIDWithRoles(ctx, userID)
	if err == repo.ErrNotFound {
		return AuthResponse{}, NewHTTPError(http.StatusUnauthorized, "Unauthenticated.")
	}
	if err != nil {
		return AuthResponse{}, err
	}

	token, err := u.issueToken(ctx, user)
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{User: user, Token: token}, nil
}

func (u *AuthUsecase) Me(ctx context.Context, userID int64) (model.User, error) {
	user, err := u.users.FindByIDWithRoles(ctx, userID)
	if err == repo.ErrNotFound {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "Unauthenticated.")
	}
	return user, err
}

func (u *AuthUsecase) RolesOf(ctx context.Context, userID int64) ([]model.Role, error) {
	user, err := u.Me(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Roles, nil
}

// issueToken はjtiをDBに（ハッシュで）残して失効可能にする。
func (u *AuthUsecase) issueToken(ctx context.Context, user model.User) (string, error) {
	jti := uuid.NewString()

	roleNames := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roleNames = append(roleNames, r.Name)
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"jti":   jti,
		"roles": roleNames,
		"iat":   time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		return "", err
	}

	record := model.AccessToken{
		ID:        jti,
		UserID:    user.ID,
		Name:      tokenName,
		TokenHash: model.HashAccessTokenID(jti),
	}
	if err := u.tokens.Create(ctx, &record); err != nil {
		return "", err
	}

	return signed, nil
}
