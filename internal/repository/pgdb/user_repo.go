package pgdb

import (
	"context"
	"errors"

	"github.com/ects-tech/shop-backend/internal/domain"
	"github.com/ects-tech/shop-backend/internal/repository/pgdb/converter"
	"github.com/ects-tech/shop-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// UserRepo реализует репозиторий пользователей поверх PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
	conv converter.UserConverter
}

func NewUserRepo(pool *pgxpool.Pool, conv converter.UserConverter) *UserRepo {
	return &UserRepo{
		pool: pool,
		conv: conv,
	}
}

// Create сохраняет нового пользователя. Конфликт по username или email
// возвращается как e.ErrUserAlreadyExists.
func (u *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, roles)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email, password_hash, roles, created_at;
	`

	var model converter.UserModel
	err := u.pool.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash, user.Roles).
		Scan(
			&model.ID, &model.Username, &model.Email,
			&model.PasswordHash, &model.Roles, &model.CreatedAt,
		)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.ErrUserAlreadyExists
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}

// FindByUsername возвращает пользователя по имени или e.ErrUserNotFound.
func (u *UserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, email, password_hash, roles, created_at
		FROM users
		WHERE username = $1;
	`

	var model converter.UserModel
	err := u.pool.QueryRow(ctx, query, username).
		Scan(
			&model.ID, &model.Username, &model.Email,
			&model.PasswordHash, &model.Roles, &model.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrUserNotFound
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}
