package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ects-tech/shop-backend/internal/usecase"
	"github.com/ects-tech/shop-backend/pkg/e"
	"github.com/ects-tech/shop-backend/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

type orderItemRequest struct {
	ProductID int64 `json:"productId"`
	Count     int32 `json:"count"`
}

type placeOrderRequest struct {
	Address  string             `json:"address"`
	Products []orderItemRequest `json:"products"`
}

type orderLineResponse struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Photo     string `json:"photo,omitempty"`
	Count     int32  `json:"count"`
	Price     string `json:"price"`
}

type orderResponse struct {
	OrderID   int64               `json:"orderId"`
	UserID    int64               `json:"userId"`
	Address   string              `json:"address"`
	CreatedAt time.Time           `json:"createdAt"`
	Products  []orderLineResponse `json:"products"`
}

// placeOrder
//
//	@Summary		Оформление заказа
//	@Description	Создаёт заказ из корзины с фиксацией текущих цен
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			input	body		placeOrderRequest		true	"Адрес и позиции корзины"
//	@Success		201		{object}	map[string]interface{}	"ID созданного заказа"
//	@Failure		400		{object}	ErrorResponse			"Ошибка валидации корзины"
//	@Failure		401		{object}	ErrorResponse			"Требуется вход"
//	@Security		BearerAuth
//	@Router			/orders [post]
func (o *OrderHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	items := make([]usecase.BasketItem, 0, len(req.Products))
	for _, item := range req.Products {
		items = append(items, usecase.BasketItem{
			ProductID: item.ProductID,
			Quantity:  item.Count,
		})
	}

	orderID, err := o.orderUsecase.PlaceOrder(r.Context(), identityFromContext(r.Context()),
		usecase.NewPlaceOrderReq(req.Address, items))
	if err != nil {
		o.logger.Warnf("place order failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"orderId": orderID,
	})
}

// listOrdersByUser
//
//	@Summary		Заказы пользователя
//	@Description	Свои заказы видит каждый, чужие — только admin
//	@Tags			orders
//	@Produce		json
//	@Param			userID	path		int	true	"ID пользователя"
//	@Success		200		{array}		orderResponse
//	@Failure		403		{object}	ErrorResponse	"Чужая история заказов"
//	@Security		BearerAuth
//	@Router			/orders/user/{userID} [get]
func (o *OrderHandler) listOrdersByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	orders, err := o.orderUsecase.ListOrdersForUser(r.Context(), identityFromContext(r.Context()), userID)
	if err != nil {
		o.logger.Warnf("list orders failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		lines := make([]orderLineResponse, 0, len(order.Products))
		for _, line := range order.Products {
			lines = append(lines, orderLineResponse{
				ProductID: line.ProductID,
				Name:      line.Name,
				Photo:     line.Photo,
				Count:     line.Quantity,
				Price:     formatCents(line.Price),
			})
		}
		result = append(result, orderResponse{
			OrderID:   order.OrderID,
			UserID:    order.UserID,
			Address:   order.Address,
			CreatedAt: order.CreatedAt,
			Products:  lines,
		})
	}

	WriteSuccess(w, http.StatusOK, result)
}
