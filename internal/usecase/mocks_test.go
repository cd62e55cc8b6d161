package usecase_test

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mock: UserRepository
// =====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context, q repo.UserListQuery) ([]model.User, int64, error) {
	args := m.Called(ctx, q)
	users, _ := args.Get(0).([]model.User)
	total, _ := args.Get(1).(int64)
	return users, total, args.Error(2)
}

func (m *MockUserRepository) ListAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByIDWithRoles(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByIDWithReviews(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByIDWithCarts(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) ReplaceRoles(ctx context.Context, user *model.User, roles []model.Role) error {
	args := m.Called(ctx, user, roles)
	return args.Error(0)
}

func (m *MockUserRepository) AttachRole(ctx context.Context, user *model.User, role model.Role) error {
	args := m.Called(ctx, user, role)
	return args.Error(0)
}

// =====================
// Mock: RoleRepository
// =====================

type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) ListAll(ctx context.Context) ([]model.Role, error) {
	args := m.Called(ctx)
	roles, _ := args.Get(0).([]model.Role)
	return roles, args.Error(1)
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (model.Role, error) {
	args := m.Called(ctx, name)
	r, _ := args.Get(0).(model.Role)
	return r, args.Error(1)
}

func (m *MockRoleRepository) ListByNames(ctx context.Context, names []string) ([]model.Role, error) {
	args := m.Called(ctx, names)
	roles, _ := args.Get(0).([]model.Role)
	return roles, args.Error(1)
}

func (m *MockRoleRepository) Create(ctx context.Context, role *model.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

// =====================
// Mock: AccessTokenRepository
// =====================

type MockAccessTokenRepository struct {
	mock.Mock
}

func (m *MockAccessTokenRepository) Create(ctx context.Context, token *model.AccessToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAccessTokenRepository) FindByTokenHash(ctx context.Context, hash string) (model.AccessToken, error) {
	args := m.Called(ctx, hash)
	t, _ := args.Get(0).(model.AccessToken)
	return t, args.Error(1)
}

func (m *MockAccessTokenRepository) DeleteAllByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// =====================
// Mock: StoreRepository
// =====================

type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) List(ctx context.Context, q repo.StoreListQuery) ([]model.Store, int64, error) {
	args := m.Called(ctx, q)
	stores, _ := args.Get(0).([]model.Store)
	total, _ := args.Get(1).(int64)
	return stores, total, args.Error(2)
}

func (m *MockStoreRepository) ListAll(ctx context.Context) ([]model.Store, error) {
	args := m.Called(ctx)
	stores, _ := args.Get(0).([]model.Store)
	return stores, args.Error(1)
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id int64) (model.Store, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Store)
	return s, args.Error(1)
}

func (m *MockStoreRepository) FindByIDWithProducts(ctx context.Context, id int64) (model.Store, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Store)
	return s, args.Error(1)
}

func (m *MockStoreRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStoreRepository) Create(ctx context.Context, store *model.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) Update(ctx context.Context, store *model.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStoreRepository) SearchByName(ctx context.Context, name string, p repo.Pagination) ([]model.Store, int64, error) {
	args := m.Called(ctx, name, p)
	stores, _ := args.Get(0).([]model.Store)
	total, _ := args.Get(1).(int64)
	return stores, total, args.Error(2)
}

func (m *MockStoreRepository) ListByCity(ctx context.Context, city string, p repo.Pagination) ([]model.Store, int64, error) {
	args := m.Called(ctx, city, p)
	stores, _ := args.Get(0).([]model.Store)
	total, _ := args.Get(1).(int64)
	return stores, total, args.Error(2)
}

// =====================
// Mock: CategoryRepository
// =====================

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context, q repo.CategoryListQuery) ([]model.Category, int64, error) {
	args := m.Called(ctx, q)
	categories, _ := args.Get(0).([]model.Category)
	total, _ := args.Get(1).(int64)
	return categories, total, args.Error(2)
}

func (m *MockCategoryRepository) ListAll(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]model.Category)
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *MockCategoryRepository) FindByIDWithProducts(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *MockCategoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) HasProducts(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) ListProducts(ctx context.Context, id int64) ([]model.Product, error) {
	args := m.Called(ctx, id)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

// =====================
// Mock: ProductRepository
// =====================

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	products, _ := args.Get(0).([]model.Product)
	total, _ := args.Get(1).(int64)
	return products, total, args.Error(2)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) FindByIDWithRelations(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) ListByStoreID(ctx context.Context, storeID int64) ([]model.Product, error) {
	args := m.Called(ctx, storeID)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

// =====================
// Mock: ProductImageRepository
// =====================

type MockProductImageRepository struct {
	mock.Mock
}

func (m *MockProductImageRepository) List(ctx context.Context, q repo.ProductImageListQuery) ([]model.ProductImage, int64, error) {
	args := m.Called(ctx, q)
	images, _ := args.Get(0).([]model.ProductImage)
	total, _ := args.Get(1).(int64)
	return images, total, args.Error(2)
}

func (m *MockProductImageRepository) FindByID(ctx context.Context, id int64) (model.ProductImage, error) {
	args := m.Called(ctx, id)
	img, _ := args.Get(0).(model.ProductImage)
	return img, args.Error(1)
}

func (m *MockProductImageRepository) Create(ctx context.Context, image *model.ProductImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockProductImageRepository) Update(ctx context.Context, image *model.ProductImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockProductImageRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductImageRepository) ListByProductID(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	args := m.Called(ctx, productID)
	images, _ := args.Get(0).([]model.ProductImage)
	return images, args.Error(1)
}

// =====================
// Mock: CartRepository
// =====================

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) List(ctx context.Context, q repo.CartListQuery) ([]model.Cart, int64, error) {
	args := m.Called(ctx, q)
	carts, _ := args.Get(0).([]model.Cart)
	total, _ := args.Get(1).(int64)
	return carts, total, args.Error(2)
}

func (m *MockCartRepository) FindByID(ctx context.Context, id int64) (model.Cart, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCartRepository) Create(ctx context.Context, cart *model.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *MockCartRepository) Update(ctx context.Context, cart *model.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCartRepository) HasOrder(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCartRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Cart, error) {
	args := m.Called(ctx, userID)
	carts, _ := args.Get(0).([]model.Cart)
	return carts, args.Error(1)
}

// =====================
// Mock: OrderRepository
// =====================

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(ctx context.Context, q repo.OrderListQuery) ([]model.Order, int64, error) {
	args := m.Called(ctx, q)
	orders, _ := args.Get(0).([]model.Order)
	total, _ := args.Get(1).(int64)
	return orders, total, args.Error(2)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id int64) (model.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) CartHasOrder(ctx context.Context, cartID int64, excludeOrderID int64) (bool, error) {
	args := m.Called(ctx, cartID, excludeOrderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

// =====================
// Mock: PaymentRepository
// =====================

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) List(ctx context.Context, q repo.PaymentListQuery) ([]model.Payment, int64, error) {
	args := m.Called(ctx, q)
	payments, _ := args.Get(0).([]model.Payment)
	total, _ := args.Get(1).(int64)
	return payments, total, args.Error(2)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id int64) (model.Payment, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Payment)
	return p, args.Error(1)
}

func (m *MockPaymentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, payment *model.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentRepository) HasOrders(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// =====================
// Mock: ReviewRepository
// =====================

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) List(ctx context.Context, q repo.ReviewListQuery) ([]model.Review, int64, error) {
	args := m.Called(ctx, q)
	reviews, _ := args.Get(0).([]model.Review)
	total, _ := args.Get(1).(int64)
	return reviews, total, args.Error(2)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id int64) (model.Review, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(model.Review)
	return r, args.Error(1)
}

func (m *MockReviewRepository) FindByIDWithRelations(ctx context.Context, id int64) (model.Review, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(model.Review)
	return r, args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) ListByProductID(ctx context.Context, productID int64, q repo.ReviewListQuery) ([]model.Review, int64, error) {
	args := m.Called(ctx, productID, q)
	reviews, _ := args.Get(0).([]model.Review)
	total, _ := args.Get(1).(int64)
	return reviews, total, args.Error(2)
}

func (m *MockReviewRepository) ListByUserID(ctx context.Context, userID int64, q repo.ReviewListQuery) ([]model.Review, int64, error) {
	args := m.Called(ctx, userID, q)
	reviews, _ := args.Get(0).([]model.Review)
	total, _ := args.Get(1).(int64)
	return reviews, total, args.Error(2)
}

func (m *MockReviewRepository) AverageRatingForProduct(ctx context.Context, productID int64) (float64, error) {
	args := m.Called(ctx, productID)
	avg, _ := args.Get(0).(float64)
	return avg, args.Error(1)
}

func (m *MockReviewRepository) ExistsForUserAndProduct(ctx context.Context, userID int64, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

// =====================
// Fake: TransactionManager
// =====================

// トランザクション境界だけ再現する。中身はモックに委譲。
type fakeTxRepos struct {
	users    repo.UserRepository
	roles    repo.RoleRepository
	carts    repo.CartRepository
	orders   repo.OrderRepository
	payments repo.PaymentRepository
}

func (f fakeTxRepos) Users() repo.UserRepository       { return f.users }
func (f fakeTxRepos) Roles() repo.RoleRepository       { return f.roles }
func (f fakeTxRepos) Carts() repo.CartRepository       { return f.carts }
func (f fakeTxRepos) Orders() repo.OrderRepository     { return f.orders }
func (f fakeTxRepos) Payments() repo.PaymentRepository { return f.payments }

type fakeTxManager struct {
	repos fakeTxRepos
}

func (f *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(f.repos)
}
