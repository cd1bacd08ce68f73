package usecase

import (
	"context"

	"github.com/ects-tech/shop-backend/internal/domain"
)

type AuthUC interface {
	Register(ctx context.Context, req *RegisterReq) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type CatalogUC interface {
	ListProducts(ctx context.Context) ([]ProductInfo, error)
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]ProductInfo, error)
	AddProduct(ctx context.Context, req *AddProductReq) (*domain.Product, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) (*domain.Product, error)
	SetProductPhoto(ctx context.Context, productID int64, upload *PhotoUpload) (string, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type OrderUC interface {
	PlaceOrder(ctx context.Context, identity domain.Identity, req *PlaceOrderReq) (int64, error)
	ListOrdersForUser(ctx context.Context, identity domain.Identity, userID int64) ([]OrderInfo, error)
}
