package usecase

import (
	"context"
	"encoding/json"
	"time"
	"unicode/utf8"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/ects-tech/shop-backend/internal/domain"
	"github.com/ects-tech/shop-backend/pkg/e"
	"github.com/ects-tech/shop-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	maxAddressLen = 250
	minQuantity   = 1
	maxQuantity   = 30
)

// OrderUseCase реализует оформление заказов и выдачу истории заказов.
type OrderUseCase struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// PlaceOrder проверяет корзину и атомарно создаёт заказ со строками.
// Цены фиксируются из каталога в момент записи: строки читаются и пишутся
// в одной транзакции, параллельное изменение цены товара даёт заказу ту
// цену, которая была видна транзакции. Любая ошибка валидации или записи
// оставляет хранилище нетронутым.
func (o *OrderUseCase) PlaceOrder(ctx context.Context, identity domain.Identity, req *PlaceOrderReq) (int64, error) {
	const op = "OrderUseCase.PlaceOrder"

	if identity.IsAnonymous() {
		return 0, e.Wrap(op, e.ErrUnauthorized)
	}

	// Проверки, не требующие чтения каталога
	if err := validateBasketShape(req); err != nil {
		return 0, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return 0, e.Wrap(op, e.ErrStorageFailure)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	ids := make([]int64, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := o.productRepo.GetForOrder(ctx, ids)
	if err != nil {
		return 0, e.Wrap(op, err)
	}
	for _, item := range req.Items {
		if _, ok := products[item.ProductID]; !ok {
			err = e.ErrUnknownProduct
			return 0, e.Wrap(op, err)
		}
	}

	for _, item := range req.Items {
		if item.Quantity < minQuantity || item.Quantity > maxQuantity {
			err = e.ErrInvalidQuantity
			return 0, e.Wrap(op, err)
		}
	}

	order := &domain.Order{
		UserID:    identity.UserID,
		Address:   req.Address,
		CreatedAt: time.Now(),
	}

	order, err = o.orderRepo.Create(ctx, order, buildOrderLines(req.Items, products))
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	event, err := o.buildOrderPlacedEvent(order, req.Items, products)
	if err != nil {
		return 0, e.Wrap(op, err)
	}
	if _, err = o.outboxRepo.Create(ctx, event); err != nil {
		return 0, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, e.Wrap(op, e.ErrStorageFailure)
	}

	return order.ID, nil
}

// ListOrdersForUser возвращает все заказы пользователя с позициями.
// Вызывающий видит только свои заказы; роль admin снимает это ограничение.
func (o *OrderUseCase) ListOrdersForUser(ctx context.Context, identity domain.Identity, userID int64) ([]OrderInfo, error) {
	const op = "OrderUseCase.ListOrdersForUser"

	if identity.IsAnonymous() {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}
	if !canListOrders(identity, userID) {
		return nil, e.Wrap(op, e.ErrForbidden)
	}

	orders, err := o.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// canListOrders — явное правило доступа к чужой истории заказов.
func canListOrders(identity domain.Identity, userID int64) bool {
	return identity.UserID == userID || identity.HasRole(domain.RoleAdmin)
}

// validateBasketShape выполняет проверки, не требующие каталога.
// Порядок фиксирован: адрес, пустая корзина, дубликаты позиций.
func validateBasketShape(req *PlaceOrderReq) error {
	if req.Address == "" {
		return e.ErrAddressRequired
	}
	// Пределы считаются в символах, не в байтах
	if utf8.RuneCountInString(req.Address) > maxAddressLen {
		return e.ErrAddressTooLong
	}
	if len(req.Items) == 0 {
		return e.ErrEmptyOrder
	}

	seen := make(map[int64]struct{}, len(req.Items))
	for _, item := range req.Items {
		if _, ok := seen[item.ProductID]; ok {
			return e.ErrDuplicateProduct
		}
		seen[item.ProductID] = struct{}{}
	}

	return nil
}

// buildOrderLines формирует строки заказа со снимком текущих цен.
func buildOrderLines(items []BasketItem, products map[int64]*domain.Product) []domain.OrderLine {
	lines := make([]domain.OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, domain.OrderLine{
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			PriceAtPurchase: products[item.ProductID].Price,
		})
	}

	return lines
}

func (o *OrderUseCase) buildOrderPlacedEvent(order *domain.Order, items []BasketItem, products map[int64]*domain.Product) (*OutboxEvent, error) {
	eventID := uuid.NewString()

	payload := OrderPlacedPayload{
		EventID:   eventID,
		OrderID:   order.ID,
		UserID:    order.UserID,
		Address:   order.Address,
		CreatedAt: order.CreatedAt,
		Lines:     make([]OrderPlacedLine, 0, len(items)),
	}
	for _, item := range items {
		payload.Lines = append(payload.Lines, OrderPlacedLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     products[item.ProductID].Price,
		})
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return NewOutboxEvent(eventID, EventOrderPlaced, order.ID, data), nil
}
