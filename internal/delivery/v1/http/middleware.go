package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/ects-tech/shop-backend/internal/domain"
	"github.com/ects-tech/shop-backend/pkg/e"
)

type ctxKey string

const identityKey ctxKey = "identity"

// TokenValidator проверяет токен доступа и восстанавливает личность вызывающего.
type TokenValidator interface {
	Validate(tokenString string) (domain.Identity, error)
}

// Authenticate разбирает заголовок Authorization и кладёт Identity в контекст.
// Любой сбой проверки токена оставляет вызывающего анонимным, решение
// о доступе принимают RequireAuth и RequireRole на конкретных маршрутах.
func Authenticate(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := tokens.Validate(raw)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth пропускает только аутентифицированные запросы.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identityFromContext(r.Context()).IsAnonymous() {
			WriteError(w, e.ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole пропускает только вызывающих с указанной ролью.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := identityFromContext(r.Context())
			if identity.IsAnonymous() {
				WriteError(w, e.ErrUnauthorized)
				return
			}
			if !identity.HasRole(role) {
				WriteError(w, e.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func identityFromContext(ctx context.Context) domain.Identity {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	if !ok {
		return domain.Identity{}
	}
	return identity
}
