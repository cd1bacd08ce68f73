package token

import (
	"strconv"
	"time"

	"github.com/ects-tech/shop-backend/internal/cfg"
	"github.com/ects-tech/shop-backend/internal/domain"
	"github.com/ects-tech/shop-backend/pkg/e"
	"github.com/golang-jwt/jwt/v5"
)

// Claims — состав утверждений токена доступа.
type Claims struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// Service выпускает и проверяет подписанные токены доступа.
// Ключ подписи фиксируется на время жизни процесса и приходит из конфигурации.
type Service struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
	now        func() time.Time
}

func NewService(cfg *cfg.AuthCfg) *Service {
	return &Service{
		signingKey: cfg.SigningKey,
		issuer:     cfg.Issuer,
		ttl:        cfg.TokenTTL,
		now:        time.Now,
	}
}

// Issue выпускает HS256-токен с личностью вызывающего.
// Окно действия: [момент выпуска, момент выпуска + TTL).
func (s *Service) Issue(identity domain.Identity) (string, error) {
	const op = "token.Service.Issue"

	issuedAt := s.now()
	claims := Claims{
		Username: identity.Username,
		Roles:    identity.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(identity.UserID, 10),
			Issuer:    s.issuer,
			NotBefore: jwt.NewNumericDate(issuedAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	return signed, nil
}

// Validate проверяет подпись, срок действия и издателя токена и строит
// Identity из его утверждений. Audience сознательно не проверяется.
func (s *Service) Validate(tokenString string) (domain.Identity, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		return domain.Identity{}, e.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return domain.Identity{}, e.ErrInvalidToken
	}

	return domain.NewIdentity(userID, claims.Username, claims.Roles), nil
}
