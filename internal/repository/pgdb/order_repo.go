package pgdb

import (
	"context"

	"github.com/ects-tech/shop-backend/internal/domain"
	"github.com/ects-tech/shop-backend/internal/usecase"
	"github.com/ects-tech/shop-backend/pkg/e"
	"github.com/ects-tech/shop-backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
}

func NewOrderRepo(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create пишет заказ и все его строки в транзакции из контекста.
// Частичная запись невозможна: откат транзакции убирает и заказ, и строки.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order, lines []domain.OrderLine) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO orders (user_id, address, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query, order.UserID, order.Address, order.CreatedAt).
		Scan(&order.ID, &order.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	lineQuery := `
		INSERT INTO order_products (order_id, product_id, quantity, price_at_purchase)
		VALUES ($1, $2, $3, $4);
	`

	for _, line := range lines {
		if _, err := tx.Exec(ctx, lineQuery,
			order.ID, line.ProductID, line.Quantity, line.PriceAtPurchase,
		); err != nil {
			if postgresDuplicate(err) {
				return nil, e.ErrDuplicateProduct
			}

			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return order, nil
}

// ListByUser возвращает заказы пользователя со строками: текущие имя и фото
// товара, историческая цена. Порядок стабилен: заказы и строки по id.
func (o *OrderRepo) ListByUser(ctx context.Context, userID int64) ([]usecase.OrderInfo, error) {
	query := `
		SELECT o.id, o.address, o.created_at,
		       op.product_id, COALESCE(p.name, ''), COALESCE(p.photo, ''),
		       op.quantity, op.price_at_purchase
		FROM orders o
		JOIN order_products op ON op.order_id = o.id
		LEFT JOIN products p ON p.id = op.product_id
		WHERE o.user_id = $1
		ORDER BY o.id, op.product_id;
	`

	rows, err := o.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.OrderInfo, 0)
	for rows.Next() {
		var (
			orderID int64
			info    usecase.OrderInfo
			line    usecase.OrderLineInfo
		)

		if err := rows.Scan(
			&orderID, &info.Address, &info.CreatedAt,
			&line.ProductID, &line.Name, &line.Photo,
			&line.Quantity, &line.Price,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		if len(result) == 0 || result[len(result)-1].OrderID != orderID {
			info.OrderID = orderID
			info.UserID = userID
			result = append(result, info)
		}

		last := len(result) - 1
		result[last].Products = append(result[last].Products, line)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
