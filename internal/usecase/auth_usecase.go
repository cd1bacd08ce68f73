package usecase

import (
	"context"
	"errors"
	"net/mail"
	"unicode"

	"github.com/ects-tech/shop-backend/internal/domain"
	"github.com/ects-tech/shop-backend/pkg/e"
	"github.com/ects-tech/shop-backend/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

// AuthUseCase реализует регистрацию пользователей и вход по паролю.
type AuthUseCase struct {
	userRepo UserRepository
	tokens   TokenIssuer
	logger   logger.Logger
}

func NewAuthUC(userRepo UserRepository, tokens TokenIssuer, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register создаёт пользователя с ролью client.
// Роль admin через регистрацию не выдаётся.
func (a *AuthUseCase) Register(ctx context.Context, req *RegisterReq) (*domain.User, error) {
	const op = "AuthUseCase.Register"

	if req.Username == "" {
		return nil, e.Wrap(op, e.ErrUsernameRequired)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, e.Wrap(op, e.ErrInvalidEmail)
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, e.Wrap(op, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Roles:        []string{domain.RoleClient},
	}

	created, err := a.userRepo.Create(ctx, user)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	a.logger.Infof("registered user %q", created.Username)

	return created, nil
}

// Login проверяет пару логин/пароль и выпускает токен доступа.
// Неизвестное имя и неверный пароль дают одинаковую ошибку, чтобы
// не раскрывать существование учётной записи.
func (a *AuthUseCase) Login(ctx context.Context, username, password string) (string, error) {
	const op = "AuthUseCase.Login"

	if username == "" || password == "" {
		return "", e.Wrap(op, e.ErrInvalidCredentials)
	}

	user, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, e.ErrUserNotFound) {
			return "", e.Wrap(op, e.ErrInvalidCredentials)
		}
		return "", e.Wrap(op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", e.Wrap(op, e.ErrInvalidCredentials)
	}

	identity := domain.NewIdentity(user.ID, user.Username, user.Roles)
	signed, err := a.tokens.Issue(identity)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	return signed, nil
}

// validatePassword повторяет парольную политику исходной системы:
// минимум 8 символов, обязательны прописная и строчная буквы и цифра.
func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return e.ErrWeakPassword
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		return e.ErrWeakPassword
	}

	return nil
}
