package token

import (
	"errors"
	"testing"
	"time"

	"github.com/ects-tech/shop-backend/internal/cfg"
	"github.com/ects-tech/shop-backend/internal/domain"
	"github.com/ects-tech/shop-backend/pkg/e"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(&cfg.AuthCfg{
		SigningKey: []byte("test-signing-key-0123456789abcdef"),
		Issuer:     "ects",
		TokenTTL:   12 * time.Hour,
	})
}

func TestService_Issue_SetsExpectedClaims(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	signed, err := svc.Issue(domain.NewIdentity(42, "alice", []string{domain.RoleClient}))
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	var claims Claims
	_, err = jwt.ParseWithClaims(signed, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-signing-key-0123456789abcdef"), nil
	}, jwt.WithTimeFunc(func() time.Time { return issuedAt }))
	require.NoError(t, err)

	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, []string{domain.RoleClient}, claims.Roles)
	assert.Equal(t, "ects", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, issuedAt.Add(12*time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestService_Validate_Roundtrip(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	signed, err := svc.Issue(domain.NewIdentity(7, "bob", []string{domain.RoleClient, domain.RoleAdmin}))
	require.NoError(t, err)

	identity, err := svc.Validate(signed)
	require.NoError(t, err)

	assert.Equal(t, int64(7), identity.UserID)
	assert.Equal(t, "bob", identity.Username)
	assert.True(t, identity.HasRole(domain.RoleAdmin))
}

func TestService_Validate_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	signed, err := svc.Issue(domain.NewIdentity(1, "alice", []string{domain.RoleClient}))
	require.NoError(t, err)

	// За секунду до истечения токен ещё действителен
	svc.now = func() time.Time { return issuedAt.Add(12*time.Hour - time.Second) }
	_, err = svc.Validate(signed)
	assert.NoError(t, err)

	// После истечения — нет
	svc.now = func() time.Time { return issuedAt.Add(12*time.Hour + time.Second) }
	_, err = svc.Validate(signed)
	assert.True(t, errors.Is(err, e.ErrInvalidToken))
}

func TestService_Validate_RejectsForeignSignature(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	other := NewService(&cfg.AuthCfg{
		SigningKey: []byte("another-signing-key-xxxxxxxxxxxx"),
		Issuer:     "ects",
		TokenTTL:   12 * time.Hour,
	})

	signed, err := other.Issue(domain.NewIdentity(1, "alice", []string{domain.RoleClient}))
	require.NoError(t, err)

	_, err = svc.Validate(signed)
	assert.True(t, errors.Is(err, e.ErrInvalidToken))
}

func TestService_Validate_RejectsForeignIssuer(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	other := NewService(&cfg.AuthCfg{
		SigningKey: []byte("test-signing-key-0123456789abcdef"),
		Issuer:     "someone-else",
		TokenTTL:   12 * time.Hour,
	})

	signed, err := other.Issue(domain.NewIdentity(1, "alice", []string{domain.RoleClient}))
	require.NoError(t, err)

	_, err = svc.Validate(signed)
	assert.True(t, errors.Is(err, e.ErrInvalidToken))
}

func TestService_Validate_IgnoresAudience(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	// Токен с посторонней audience проходит проверку: audience не валидируется
	claims := Claims{
		Username: "alice",
		Roles:    []string{domain.RoleClient},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "3",
			Issuer:    "ects",
			Audience:  jwt.ClaimStrings{"unknown-audience"},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-signing-key-0123456789abcdef"))
	require.NoError(t, err)

	identity, err := svc.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(3), identity.UserID)
}

func TestService_Validate_RejectsGarbage(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Validate(token)
		assert.True(t, errors.Is(err, e.ErrInvalidToken), "token %q", token)
	}
}

func TestService_Validate_RejectsNonNumericSubject(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	claims := Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			Issuer:    "ects",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-signing-key-0123456789abcdef"))
	require.NoError(t, err)

	_, err = svc.Validate(signed)
	assert.True(t, errors.Is(err, e.ErrInvalidToken))
}
