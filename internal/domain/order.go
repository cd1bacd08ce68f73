package domain

import "time"

// Order описывает размещённый заказ. После создания запись неизменяема.
type Order struct {
	ID        int64
	UserID    int64
	Address   string
	CreatedAt time.Time
}

// OrderLine — строка заказа с составным ключом (OrderID, ProductID).
// PriceAtPurchase фиксируется в момент оформления и никогда не
// пересчитывается из текущей цены товара.
type OrderLine struct {
	OrderID         int64
	ProductID       int64
	Quantity        int32
	PriceAtPurchase int64 // копейки
}
