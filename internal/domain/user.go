package domain

import "time"

// Имена ролей авторизации.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User описывает зарегистрированного пользователя.
// Пароль хранится только в виде bcrypt-хэша.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}
