package pgdb

import (
	"context"
	"errors"

	"github.com/ects-tech/shop-backend/internal/domain"
	"github.com/ects-tech/shop-backend/internal/repository/pgdb/converter"
	"github.com/ects-tech/shop-backend/internal/usecase"
	"github.com/ects-tech/shop-backend/pkg/e"
	"github.com/ects-tech/shop-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (name, description, price, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, photo, price, category_id, created_at, updated_at;
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, product.Name, product.Description, product.Price, product.CategoryID).
		Scan(
			&model.ID, &model.Name, &model.Description, &model.Photo,
			&model.Price, &model.CategoryID, &model.CreatedAt, &model.UpdatedAt,
		)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, category_id = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, description, photo, price, category_id, created_at, updated_at;
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.CategoryID,
	).Scan(
		&model.ID, &model.Name, &model.Description, &model.Photo,
		&model.Price, &model.CategoryID, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	result, err := p.pool.Exec(ctx, `DELETE FROM products WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if result.RowsAffected() == 0 {
		return e.ErrProductNotFound
	}

	return nil
}

func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, name, description, photo, price, category_id, created_at, updated_at
		FROM products
		WHERE id = $1;
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id).
		Scan(
			&model.ID, &model.Name, &model.Description, &model.Photo,
			&model.Price, &model.CategoryID, &model.CreatedAt, &model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// List возвращает все товары с названием категории.
func (p *ProductRepo) List(ctx context.Context) ([]usecase.ProductInfo, error) {
	query := `
		SELECT pr.id, pr.name, pr.description, pr.photo, pr.price, pr.category_id, cat.name
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		ORDER BY pr.id;
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return scanProductInfos(rows)
}

// ListByCategory возвращает товары указанной категории.
func (p *ProductRepo) ListByCategory(ctx context.Context, categoryID int64) ([]usecase.ProductInfo, error) {
	query := `
		SELECT pr.id, pr.name, pr.description, pr.photo, pr.price, pr.category_id, cat.name
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.category_id = $1
		ORDER BY pr.id;
	`

	rows, err := p.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return scanProductInfos(rows)
}

// GetForOrder читает товары в транзакции оформления заказа,
// чтобы снимок цен был согласован с моментом записи строк.
func (p *ProductRepo) GetForOrder(ctx context.Context, ids []int64) (map[int64]*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT id, name, description, photo, price, category_id, created_at, updated_at
		FROM products
		WHERE id = ANY($1);
	`

	rows, err := tx.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make(map[int64]*domain.Product, len(ids))
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Description, &model.Photo,
			&model.Price, &model.CategoryID, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result[model.ID] = p.conv.ToEntity(&model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// SetPhoto заменяет ссылку на файл фотографии товара.
func (p *ProductRepo) SetPhoto(ctx context.Context, id int64, photo string) error {
	result, err := p.pool.Exec(ctx,
		`UPDATE products SET photo = $2, updated_at = NOW() WHERE id = $1;`, id, photo)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if result.RowsAffected() == 0 {
		return e.ErrProductNotFound
	}

	return nil
}

func scanProductInfos(rows pgx.Rows) ([]usecase.ProductInfo, error) {
	result := make([]usecase.ProductInfo, 0)
	for rows.Next() {
		var info usecase.ProductInfo
		if err := rows.Scan(
			&info.ID, &info.Name, &info.Description, &info.Photo,
			&info.Price, &info.CategoryID, &info.CategoryName,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, info)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
