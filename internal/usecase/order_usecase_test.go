package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ects-tech/shop-backend/internal/domain"
	"github.com/ects-tech/shop-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBasketShape(t *testing.T) {
	t.Parallel()

	longAddress := make([]byte, maxAddressLen+1)
	for i := range longAddress {
		longAddress[i] = 'a'
	}

	tests := []struct {
		name    string
		req     *PlaceOrderReq
		wantErr error
	}{
		{
			name:    "empty address",
			req:     NewPlaceOrderReq("", []BasketItem{{ProductID: 1, Quantity: 1}}),
			wantErr: e.ErrAddressRequired,
		},
		{
			name:    "address too long",
			req:     NewPlaceOrderReq(string(longAddress), []BasketItem{{ProductID: 1, Quantity: 1}}),
			wantErr: e.ErrAddressTooLong,
		},
		{
			name:    "empty basket",
			req:     NewPlaceOrderReq("ул. Ленина, 1", nil),
			wantErr: e.ErrEmptyOrder,
		},
		{
			name: "duplicate product",
			req: NewPlaceOrderReq("ул. Ленина, 1", []BasketItem{
				{ProductID: 1, Quantity: 1},
				{ProductID: 1, Quantity: 2},
			}),
			wantErr: e.ErrDuplicateProduct,
		},
		{
			name: "valid",
			req: NewPlaceOrderReq("ул. Ленина, 1", []BasketItem{
				{ProductID: 1, Quantity: 1},
				{ProductID: 2, Quantity: 30},
			}),
		},
		{
			// Предел в символах: кириллический адрес длиннее в байтах
			name: "cyrillic address at limit",
			req: NewPlaceOrderReq(strings.Repeat("я", maxAddressLen),
				[]BasketItem{{ProductID: 1, Quantity: 1}}),
		},
		{
			name: "cyrillic address over limit",
			req: NewPlaceOrderReq(strings.Repeat("я", maxAddressLen+1),
				[]BasketItem{{ProductID: 1, Quantity: 1}}),
			wantErr: e.ErrAddressTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBasketShape(tt.req)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateBasketShape_AddressBeforeDuplicates(t *testing.T) {
	t.Parallel()

	// При нескольких нарушениях сообщается первое по порядку проверок
	req := NewPlaceOrderReq("", []BasketItem{
		{ProductID: 1, Quantity: 1},
		{ProductID: 1, Quantity: 1},
	})

	assert.True(t, errors.Is(validateBasketShape(req), e.ErrAddressRequired))
}

func TestBuildOrderLines_SnapshotsPrices(t *testing.T) {
	t.Parallel()

	products := map[int64]*domain.Product{
		1: {ID: 1, Price: 999},
		2: {ID: 2, Price: 500},
	}
	items := []BasketItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 30},
	}

	lines := buildOrderLines(items, products)
	require.Len(t, lines, 2)

	assert.Equal(t, int64(999), lines[0].PriceAtPurchase)
	assert.Equal(t, int32(2), lines[0].Quantity)
	assert.Equal(t, int64(500), lines[1].PriceAtPurchase)
	assert.Equal(t, int32(30), lines[1].Quantity)

	// Последующее изменение каталога не трогает уже построенные строки
	products[1].Price = 1
	assert.Equal(t, int64(999), lines[0].PriceAtPurchase)
}

func TestCanListOrders(t *testing.T) {
	t.Parallel()

	client := domain.NewIdentity(5, "alice", []string{domain.RoleClient})
	admin := domain.NewIdentity(9, "root", []string{domain.RoleAdmin})

	assert.True(t, canListOrders(client, 5))
	assert.False(t, canListOrders(client, 6))
	assert.True(t, canListOrders(admin, 5))
	assert.True(t, canListOrders(admin, 9))
}

func TestOrderUseCase_PlaceOrder_RejectsAnonymous(t *testing.T) {
	t.Parallel()

	uc := NewOrderUC(nil, nil, nil, nil, noopLogger{})

	_, err := uc.PlaceOrder(t.Context(), domain.Identity{},
		NewPlaceOrderReq("ул. Ленина, 1", []BasketItem{{ProductID: 1, Quantity: 1}}))
	assert.True(t, errors.Is(err, e.ErrUnauthorized))
}

func TestOrderUseCase_PlaceOrder_ShapeErrorsBeforeStorage(t *testing.T) {
	t.Parallel()

	// Репозитории и пул не заданы: проверки формы корзины обязаны
	// отработать до любого обращения к хранилищу.
	uc := NewOrderUC(nil, nil, nil, nil, noopLogger{})
	identity := domain.NewIdentity(1, "alice", []string{domain.RoleClient})

	_, err := uc.PlaceOrder(t.Context(), identity, NewPlaceOrderReq("", nil))
	assert.True(t, errors.Is(err, e.ErrAddressRequired))

	_, err = uc.PlaceOrder(t.Context(), identity, NewPlaceOrderReq("ул. Ленина, 1", nil))
	assert.True(t, errors.Is(err, e.ErrEmptyOrder))

	_, err = uc.PlaceOrder(t.Context(), identity, NewPlaceOrderReq("ул. Ленина, 1", []BasketItem{
		{ProductID: 7, Quantity: 1},
		{ProductID: 7, Quantity: 1},
	}))
	assert.True(t, errors.Is(err, e.ErrDuplicateProduct))
}

func newPlaceOrderUC(products ...*domain.Product) (*OrderUseCase, *fakeOrderRepo, *fakeOutboxRepo, *fakeDBPool) {
	orders := &fakeOrderRepo{}
	outbox := &fakeOutboxRepo{}
	pool := &fakeDBPool{}
	return NewOrderUC(orders, newFakeProductRepo(products...), outbox, pool, noopLogger{}), orders, outbox, pool
}

func TestOrderUseCase_PlaceOrder_UnknownProduct(t *testing.T) {
	t.Parallel()

	uc, orders, outbox, pool := newPlaceOrderUC(&domain.Product{ID: 1, Price: 999, CategoryID: 1})
	identity := domain.NewIdentity(5, "alice", []string{domain.RoleClient})

	_, err := uc.PlaceOrder(context.Background(), identity, NewPlaceOrderReq("ул. Ленина, 1", []BasketItem{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 1},
	}))
	assert.True(t, errors.Is(err, e.ErrUnknownProduct))

	// Отказ внутри транзакции не оставляет следов в хранилище
	assert.Empty(t, orders.created)
	assert.Empty(t, outbox.events)
	assert.True(t, pool.tx.rolledBack)
	assert.False(t, pool.tx.committed)
}

func TestOrderUseCase_PlaceOrder_QuantityBounds(t *testing.T) {
	t.Parallel()

	uc, orders, _, pool := newPlaceOrderUC(&domain.Product{ID: 1, Price: 999, CategoryID: 1})
	identity := domain.NewIdentity(5, "alice", []string{domain.RoleClient})

	_, err := uc.PlaceOrder(context.Background(), identity, NewPlaceOrderReq("ул. Ленина, 1",
		[]BasketItem{{ProductID: 1, Quantity: 0}}))
	assert.True(t, errors.Is(err, e.ErrInvalidQuantity))

	_, err = uc.PlaceOrder(context.Background(), identity, NewPlaceOrderReq("ул. Ленина, 1",
		[]BasketItem{{ProductID: 1, Quantity: maxQuantity + 1}}))
	assert.True(t, errors.Is(err, e.ErrInvalidQuantity))

	assert.Empty(t, orders.created)
	assert.False(t, pool.tx.committed)
}

func TestOrderUseCase_PlaceOrder_Success(t *testing.T) {
	t.Parallel()

	uc, orders, outbox, pool := newPlaceOrderUC(
		&domain.Product{ID: 1, Price: 999, CategoryID: 1},
		&domain.Product{ID: 2, Price: 500, CategoryID: 1},
	)
	identity := domain.NewIdentity(5, "alice", []string{domain.RoleClient})

	orderID, err := uc.PlaceOrder(context.Background(), identity, NewPlaceOrderReq("ул. Ленина, 1", []BasketItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: maxQuantity},
	}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), orderID)

	require.Len(t, orders.created, 1)
	assert.Equal(t, int64(5), orders.created[0].UserID)
	require.Len(t, orders.lines[0], 2)
	assert.Equal(t, int64(999), orders.lines[0][0].PriceAtPurchase)
	assert.Equal(t, int64(500), orders.lines[0][1].PriceAtPurchase)

	require.Len(t, outbox.events, 1)
	assert.Equal(t, EventOrderPlaced, outbox.events[0].EventType)
	assert.Equal(t, orderID, outbox.events[0].OrderID)

	var payload OrderPlacedPayload
	require.NoError(t, json.Unmarshal(outbox.events[0].Payload, &payload))
	assert.Equal(t, orderID, payload.OrderID)
	assert.Len(t, payload.Lines, 2)

	assert.True(t, pool.tx.committed)
}

func TestOrderUseCase_ListOrdersForUser_Access(t *testing.T) {
	t.Parallel()

	uc := NewOrderUC(&fakeOrderRepo{}, nil, nil, nil, noopLogger{})

	_, err := uc.ListOrdersForUser(t.Context(), domain.Identity{}, 1)
	assert.True(t, errors.Is(err, e.ErrUnauthorized))

	client := domain.NewIdentity(5, "alice", []string{domain.RoleClient})
	_, err = uc.ListOrdersForUser(t.Context(), client, 6)
	assert.True(t, errors.Is(err, e.ErrForbidden))

	_, err = uc.ListOrdersForUser(t.Context(), client, 5)
	assert.NoError(t, err)

	admin := domain.NewIdentity(9, "root", []string{domain.RoleAdmin})
	_, err = uc.ListOrdersForUser(t.Context(), admin, 6)
	assert.NoError(t, err)
}
