package usecase

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/ects-tech/shop-backend/internal/domain"
	"github.com/ects-tech/shop-backend/pkg/e"
	"github.com/ects-tech/shop-backend/pkg/logger"
	"github.com/google/uuid"
)

const (
	maxProductNameLen  = 100
	maxCategoryNameLen = 50
	maxPhotoSize       = 2 << 20 // 2 MiB
	pngMimeType        = "image/png"

	cacheKeyAll = "catalog:all"
)

// CatalogUseCase реализует бизнес-логику управления каталогом товаров.
type CatalogUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	photoRepo    PhotoRepository
	cacheRepo    CacheRepository
	logger       logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	photoRepo PhotoRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		photoRepo:    photoRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
	}
}

// ListProducts возвращает все товары каталога, используя кэш при попадании.
func (c *CatalogUseCase) ListProducts(ctx context.Context) ([]ProductInfo, error) {
	const op = "CatalogUseCase.ListProducts"

	return c.listCached(ctx, op, cacheKeyAll, func(ctx context.Context) ([]ProductInfo, error) {
		return c.productRepo.List(ctx)
	})
}

// ListProductsByCategory возвращает товары указанной категории.
// Неизвестная категория даёт пустой список, а не ошибку.
func (c *CatalogUseCase) ListProductsByCategory(ctx context.Context, categoryID int64) ([]ProductInfo, error) {
	const op = "CatalogUseCase.ListProductsByCategory"

	return c.listCached(ctx, op, categoryCacheKey(categoryID), func(ctx context.Context) ([]ProductInfo, error) {
		return c.productRepo.ListByCategory(ctx, categoryID)
	})
}

// AddProduct создаёт товар после проверки полей и ссылки на категорию.
func (c *CatalogUseCase) AddProduct(ctx context.Context, req *AddProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.AddProduct"

	if err := c.validateProduct(ctx, req.Name, req.Price, req.CategoryID); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := c.productRepo.Create(ctx, domain.NewProduct(req.Name, req.Description, req.Price, req.CategoryID))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.invalidateCatalog(ctx, req.CategoryID)

	return product, nil
}

// UpdateProduct обновляет поля существующего товара.
func (c *CatalogUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.UpdateProduct"

	if err := c.validateProduct(ctx, req.Name, req.Price, req.CategoryID); err != nil {
		return nil, e.Wrap(op, err)
	}

	current, err := c.productRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	current.Name = req.Name
	current.Description = req.Description
	current.Price = req.Price
	oldCategoryID := current.CategoryID
	current.CategoryID = req.CategoryID

	updated, err := c.productRepo.Update(ctx, current)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.invalidateCatalog(ctx, oldCategoryID, req.CategoryID)

	return updated, nil
}

// DeleteProduct удаляет товар из каталога вместе с файлом фотографии.
// Исторические строки заказов ссылаются на товар мягко и удалением не
// затрагиваются. Сбой удаления файла не откатывает удаление товара.
func (c *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "CatalogUseCase.DeleteProduct"

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := c.productRepo.Delete(ctx, id); err != nil {
		return nil, e.Wrap(op, err)
	}

	if product.Photo != nil && *product.Photo != "" {
		if err := c.photoRepo.Delete(ctx, *product.Photo); err != nil {
			c.logger.Warnf("%s: failed to delete photo %s: %v", op, *product.Photo, err)
		}
	}

	c.invalidateCatalog(ctx, product.CategoryID)

	return product, nil
}

// SetProductPhoto принимает новую фотографию товара и заменяет ссылку.
// Объект пишется в хранилище до обновления строки, поэтому сбой между
// двумя шагами оставляет осиротевший файл, но не битую ссылку.
// Предыдущий объект не удаляется.
func (c *CatalogUseCase) SetProductPhoto(ctx context.Context, productID int64, upload *PhotoUpload) (string, error) {
	const op = "CatalogUseCase.SetProductPhoto"

	product, err := c.productRepo.GetByID(ctx, productID)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	if upload == nil || len(upload.Data) == 0 {
		return "", e.Wrap(op, e.ErrMissingFields)
	}
	if upload.Size > maxPhotoSize {
		return "", e.Wrap(op, e.ErrFileTooLarge)
	}
	if upload.MimeType != pngMimeType {
		return "", e.Wrap(op, e.ErrInvalidPhotoFormat)
	}

	objectKey := uuid.NewString() + ".png"
	image := domain.NewImage(objectKey, upload.Data, upload.Size, upload.MimeType)

	if _, err := c.photoRepo.Upload(ctx, image); err != nil {
		return "", e.Wrap(op, err)
	}

	if err := c.productRepo.SetPhoto(ctx, productID, objectKey); err != nil {
		return "", e.Wrap(op, err)
	}

	c.invalidateCatalog(ctx, product.CategoryID)

	return objectKey, nil
}

// CreateCategory создаёт новую категорию товаров.
func (c *CatalogUseCase) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	const op = "CatalogUseCase.CreateCategory"

	if name == "" {
		return nil, e.Wrap(op, e.ErrCategoryNameRequired)
	}
	if utf8.RuneCountInString(name) > maxCategoryNameLen {
		return nil, e.Wrap(op, e.ErrCategoryNameTooLong)
	}

	category, err := c.categoryRepo.Create(ctx, domain.NewCategory(name))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	const op = "CatalogUseCase.ListCategories"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

// DeleteCategory удаляет категорию. Категория с товарами не удаляется.
func (c *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	const op = "CatalogUseCase.DeleteCategory"

	exists, err := c.categoryRepo.Exists(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}
	if !exists {
		return e.Wrap(op, e.ErrCategoryNotFound)
	}

	referenced, err := c.categoryRepo.HasProducts(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}
	if referenced {
		return e.Wrap(op, e.ErrCategoryInUse)
	}

	if err := c.categoryRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	c.invalidateCatalog(ctx, id)

	return nil
}

// listCached пробует кэш, при промахе читает БД и фоном прогревает кэш.
func (c *CatalogUseCase) listCached(ctx context.Context, op, key string, load func(context.Context) ([]ProductInfo, error)) ([]ProductInfo, error) {
	cached, err := c.cacheRepo.GetProducts(ctx, key)
	if err != nil {
		c.logger.Warnf("%s: cache read failed: %v", op, err)
	}
	if cached != nil {
		return cached, nil
	}

	products, err := load(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Фоновое добавление выборки в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := c.cacheRepo.SetProducts(bgCtx, key, products); err != nil {
			c.logger.Warnf("%s: background cache write failed: %v", op, err)
		}
	}()

	return products, nil
}

func (c *CatalogUseCase) validateProduct(ctx context.Context, name string, price int64, categoryID int64) error {
	if name == "" {
		return e.ErrProductNameRequired
	}
	// Предел считается в символах, не в байтах
	if utf8.RuneCountInString(name) > maxProductNameLen {
		return e.ErrProductNameTooLong
	}
	if price < 0 {
		return e.ErrInvalidPrice
	}

	exists, err := c.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return e.ErrInvalidCategory
	}

	return nil
}

// invalidateCatalog сбрасывает ключи кэша, задетые мутацией каталога.
func (c *CatalogUseCase) invalidateCatalog(ctx context.Context, categoryIDs ...int64) {
	keys := make([]string, 0, len(categoryIDs)+1)
	keys = append(keys, cacheKeyAll)
	for _, id := range categoryIDs {
		keys = append(keys, categoryCacheKey(id))
	}

	if err := c.cacheRepo.Invalidate(ctx, keys...); err != nil {
		c.logger.Warnf("failed to invalidate catalog cache: %v", err)
	}
}

func categoryCacheKey(id int64) string {
	return fmt.Sprintf("catalog:category:%d", id)
}
