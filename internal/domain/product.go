package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID          int64
	Name        string
	Description *string
	Photo       *string // имя файла в объектном хранилище, без пути
	Price       int64   // Цена хранится в копейках
	CategoryID  int64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewProduct(name string, description *string, price int64, categoryID int64) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		CategoryID:  categoryID,
	}
}
