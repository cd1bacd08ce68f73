package usecase

import (
	"time"

	"github.com/ects-tech/shop-backend/internal/domain"
)

// AUTH USECASE

// RegisterReq — запрос на регистрацию нового пользователя.
type RegisterReq struct {
	Username string
	Email    string
	Password string
}

// ORDER USECASE

// BasketItem — позиция корзины, переданная клиентом при оформлении заказа.
type BasketItem struct {
	ProductID int64
	Quantity  int32
}

// PlaceOrderReq — запрос на оформление заказа.
type PlaceOrderReq struct {
	Address string
	Items   []BasketItem
}

// OrderLineInfo — строка заказа для выдачи наружу: текущие имя и фото товара,
// но историческая цена на момент покупки.
type OrderLineInfo struct {
	ProductID int64
	Name      string
	Photo     string
	Quantity  int32
	Price     int64 // копейки, снимок на момент оформления
}

// OrderInfo — заказ со строками для выдачи наружу.
type OrderInfo struct {
	OrderID   int64
	UserID    int64
	Address   string
	CreatedAt time.Time
	Products  []OrderLineInfo
}

// CATALOG USECASE

// ProductInfo — DTO с информацией о товаре для внешнего использования.
type ProductInfo struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	Photo        *string `json:"photo,omitempty"`
	Price        int64   `json:"price"`
	CategoryID   int64   `json:"category_id"`
	CategoryName string  `json:"category_name"`
}

// AddProductReq — запрос на добавление товара.
type AddProductReq struct {
	Name        string
	Description *string
	Price       int64
	CategoryID  int64
}

// UpdateProductReq — запрос на обновление товара.
type UpdateProductReq struct {
	ID          int64
	Name        string
	Description *string
	Price       int64
	CategoryID  int64
}

// PhotoUpload представляет фотографию товара, загруженную через multipart/form-data.
type PhotoUpload struct {
	Data     []byte // байты изображения
	MimeType string // определяется по содержимому, не по расширению
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const EventOrderPlaced OutboxEventType = "order_placed"

// OutboxEvent — событие для публикации в Kafka, записывается в одной
// транзакции с заказом.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// OrderPlacedPayload — JSON-тело события order_placed.
type OrderPlacedPayload struct {
	EventID   string            `json:"event_id"`
	OrderID   int64             `json:"order_id"`
	UserID    int64             `json:"user_id"`
	Address   string            `json:"address"`
	CreatedAt time.Time         `json:"created_at"`
	Lines     []OrderPlacedLine `json:"lines"`
}

type OrderPlacedLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
	Price     int64 `json:"price"`
}

type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

// MAPPERS

func NewRegisterReq(username, email, password string) *RegisterReq {
	return &RegisterReq{
		Username: username,
		Email:    email,
		Password: password,
	}
}

func NewPlaceOrderReq(address string, items []BasketItem) *PlaceOrderReq {
	return &PlaceOrderReq{
		Address: address,
		Items:   items,
	}
}

func NewPhotoUpload(data []byte, mimeType string, size int64, name string) *PhotoUpload {
	return &PhotoUpload{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
	}
}

func NewProductInfo(product *domain.Product, categoryName string) ProductInfo {
	return ProductInfo{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Photo:        product.Photo,
		Price:        product.Price,
		CategoryID:   product.CategoryID,
		CategoryName: categoryName,
	}
}
