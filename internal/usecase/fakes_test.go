package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/ects-tech/shop-backend/internal/domain"
	"github.com/ects-tech/shop-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// noopLogger глушит логи в тестах.
type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...any)            {}
func (noopLogger) Infof(format string, args ...any)             {}
func (noopLogger) Warnf(format string, args ...any)             {}
func (noopLogger) Errorf(err error, format string, args ...any) {}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
	seq   int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[user.Username]; ok {
		return nil, e.ErrUserAlreadyExists
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return nil, e.ErrUserAlreadyExists
		}
	}

	f.seq++
	stored := *user
	stored.ID = f.seq
	f.users[user.Username] = &stored

	return &stored, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[username]
	if !ok {
		return nil, e.ErrUserNotFound
	}
	return user, nil
}

type fakeTokenIssuer struct {
	issued []domain.Identity
}

func (f *fakeTokenIssuer) Issue(identity domain.Identity) (string, error) {
	f.issued = append(f.issued, identity)
	return "test-token", nil
}

// fakeProductRepo отдаёт подготовленные товары и фиксирует мутации.
type fakeProductRepo struct {
	mu       sync.Mutex
	products map[int64]*domain.Product
	infos    []ProductInfo
	created  []*domain.Product
	updated  []*domain.Product
	deleted  []int64
	photos   map[int64]string
	listed   int
}

func newFakeProductRepo(products ...*domain.Product) *fakeProductRepo {
	byID := make(map[int64]*domain.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}
	return &fakeProductRepo{products: byID, photos: make(map[int64]string)}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := *product
	stored.ID = int64(len(f.products) + 1)
	f.products[stored.ID] = &stored
	f.created = append(f.created, &stored)
	return &stored, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.products[product.ID]; !ok {
		return nil, e.ErrProductNotFound
	}
	stored := *product
	f.products[product.ID] = &stored
	f.updated = append(f.updated, &stored)
	return &stored, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.products[id]; !ok {
		return e.ErrProductNotFound
	}
	delete(f.products, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	product, ok := f.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	copied := *product
	return &copied, nil
}

func (f *fakeProductRepo) List(ctx context.Context) ([]ProductInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listed++
	return f.infos, nil
}

func (f *fakeProductRepo) ListByCategory(ctx context.Context, categoryID int64) ([]ProductInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listed++
	result := make([]ProductInfo, 0)
	for _, info := range f.infos {
		if info.CategoryID == categoryID {
			result = append(result, info)
		}
	}
	return result, nil
}

func (f *fakeProductRepo) GetForOrder(ctx context.Context, ids []int64) (map[int64]*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make(map[int64]*domain.Product, len(ids))
	for _, id := range ids {
		if product, ok := f.products[id]; ok {
			copied := *product
			result[id] = &copied
		}
	}
	return result, nil
}

func (f *fakeProductRepo) SetPhoto(ctx context.Context, id int64, photo string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.products[id]; !ok {
		return e.ErrProductNotFound
	}
	f.photos[id] = photo
	return nil
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[int64]*domain.Category
	withGoods  map[int64]bool
	deleted    []int64
}

func newFakeCategoryRepo(ids ...int64) *fakeCategoryRepo {
	categories := make(map[int64]*domain.Category, len(ids))
	for _, id := range ids {
		categories[id] = &domain.Category{ID: id, Name: "категория"}
	}
	return &fakeCategoryRepo{categories: categories, withGoods: make(map[int64]bool)}
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := *category
	stored.ID = int64(len(f.categories) + 1)
	f.categories[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]*domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]*domain.Category, 0, len(f.categories))
	for _, category := range f.categories {
		result = append(result, category)
	}
	return result, nil
}

func (f *fakeCategoryRepo) Exists(ctx context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.categories[id]
	return ok, nil
}

func (f *fakeCategoryRepo) HasProducts(ctx context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.withGoods[id], nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.categories[id]; !ok {
		return e.ErrCategoryNotFound
	}
	delete(f.categories, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakePhotoRepo struct {
	mu       sync.Mutex
	uploaded []*domain.Image
	deleted  []string
	failWith error
}

func (f *fakePhotoRepo) Upload(ctx context.Context, image *domain.Image) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return "", f.failWith
	}
	f.uploaded = append(f.uploaded, image)
	return image.ObjectKey, nil
}

func (f *fakePhotoRepo) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deleted = append(f.deleted, key)
	return nil
}

type fakeCacheRepo struct {
	mu          sync.Mutex
	entries     map[string][]ProductInfo
	invalidated []string
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{entries: make(map[string][]ProductInfo)}
}

func (f *fakeCacheRepo) GetProducts(ctx context.Context, key string) ([]ProductInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	products, ok := f.entries[key]
	if !ok {
		return nil, nil
	}
	return products, nil
}

func (f *fakeCacheRepo) SetProducts(ctx context.Context, key string, products []ProductInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries[key] = products
	return nil
}

func (f *fakeCacheRepo) Invalidate(ctx context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.invalidated = append(f.invalidated, keys...)
	for _, key := range keys {
		delete(f.entries, key)
	}
	return nil
}

type fakeOrderRepo struct {
	mu      sync.Mutex
	orders  map[int64][]OrderInfo
	created []*domain.Order
	lines   [][]domain.OrderLine
	seq     int64
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.Order, lines []domain.OrderLine) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	stored := *order
	stored.ID = f.seq
	f.created = append(f.created, &stored)
	f.lines = append(f.lines, lines)
	return &stored, nil
}

func (f *fakeOrderRepo) ListByUser(ctx context.Context, userID int64) ([]OrderInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.orders[userID], nil
}

type fakeOutboxRepo struct {
	mu     sync.Mutex
	events []*OutboxEvent
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	return nil
}

func (f *fakeOutboxRepo) ResetStaleProcessing(ctx context.Context, olderThan time.Duration) (int64, error) {
	return 0, nil
}

// fakeTx — pgx.Tx для проверки пути оформления заказа: фиксирует
// Commit/Rollback, запросы внутри транзакции перехватывают фейковые
// репозитории.
type fakeTx struct {
	mu         sync.Mutex
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return f, nil }

func (f *fakeTx) Commit(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.rolledBack = true
	return nil
}

func (f *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (f *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }

func (f *fakeTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (f *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (f *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (f *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (f *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }

func (f *fakeTx) Conn() *pgx.Conn { return nil }

type fakeDBPool struct {
	tx fakeTx
}

func (f *fakeDBPool) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	return &f.tx, nil
}
