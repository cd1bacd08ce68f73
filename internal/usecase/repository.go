package usecase

import (
	"context"
	"time"

	"github.com/ects-tech/shop-backend/internal/domain"
)

type UserRepository interface {
	// Create возвращает e.ErrUserAlreadyExists при конфликте username/email.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]ProductInfo, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]ProductInfo, error)
	// GetForOrder читает товары внутри открытой транзакции заказа,
	// чтобы снимок цены соответствовал моменту записи.
	GetForOrder(ctx context.Context, ids []int64) (map[int64]*domain.Product, error)
	SetPhoto(ctx context.Context, id int64, photo string) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Exists(ctx context.Context, id int64) (bool, error)
	HasProducts(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type OrderRepository interface {
	// Create пишет заказ и его строки внутри открытой транзакции.
	Create(ctx context.Context, order *domain.Order, lines []domain.OrderLine) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]OrderInfo, error)
}

type PhotoRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type CacheRepository interface {
	// GetProducts возвращает (nil, nil) при промахе кэша.
	GetProducts(ctx context.Context, key string) ([]ProductInfo, error)
	SetProducts(ctx context.Context, key string, products []ProductInfo) error
	Invalidate(ctx context.Context, keys ...string) error
}

type OutboxRepository interface {
	// Create пишет событие внутри открытой транзакции и шлёт NOTIFY.
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
	// ResetStaleProcessing возвращает в pending события, которые воркер
	// забрал, но не довёл до processed за olderThan.
	ResetStaleProcessing(ctx context.Context, olderThan time.Duration) (int64, error)
}
