package http

import (
	"net/http"
	"testing"

	"github.com/ects-tech/shop-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{name: "integer", input: "600", want: 60000},
		{name: "two decimals", input: "599.99", want: 59999},
		{name: "one decimal", input: "10.5", want: 1050},
		{name: "zero", input: "0", want: 0},
		{name: "empty", input: "", wantErr: e.ErrInvalidPrice},
		{name: "garbage", input: "abc", wantErr: e.ErrInvalidPrice},
		{name: "negative", input: "-1", wantErr: e.ErrInvalidPrice},
		{name: "three decimals", input: "1.999", wantErr: e.ErrPricePrecision},
		{name: "at limit", input: "1000000000", want: 100_000_000_000},
		{name: "over limit", input: "1000000001", wantErr: e.ErrInvalidPrice},
		{name: "far over limit", input: "100000000001", wantErr: e.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePriceToCents(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCents(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "599.99", formatCents(59999))
	assert.Equal(t, "600.00", formatCents(60000))
	assert.Equal(t, "0.00", formatCents(0))
	assert.Equal(t, "0.01", formatCents(1))
}

func TestToHTTPResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		code int
	}{
		{err: e.ErrAddressRequired, code: http.StatusBadRequest},
		{err: e.ErrEmptyOrder, code: http.StatusBadRequest},
		{err: e.ErrInvalidQuantity, code: http.StatusBadRequest},
		{err: e.ErrUnknownProduct, code: http.StatusBadRequest},
		{err: e.ErrWeakPassword, code: http.StatusBadRequest},
		{err: e.ErrInvalidCredentials, code: http.StatusUnauthorized},
		{err: e.ErrInvalidToken, code: http.StatusUnauthorized},
		{err: e.ErrUnauthorized, code: http.StatusUnauthorized},
		{err: e.ErrForbidden, code: http.StatusForbidden},
		{err: e.ErrProductNotFound, code: http.StatusNotFound},
		{err: e.ErrCategoryNotFound, code: http.StatusNotFound},
		{err: e.ErrDuplicateProduct, code: http.StatusConflict},
		{err: e.ErrCategoryInUse, code: http.StatusConflict},
		{err: e.ErrUserAlreadyExists, code: http.StatusConflict},
		{err: e.ErrFileTooLarge, code: http.StatusRequestEntityTooLarge},
		{err: e.ErrInvalidPhotoFormat, code: http.StatusUnsupportedMediaType},
		{err: assert.AnError, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		code, msg := ToHTTPResponse(tt.err)
		assert.Equal(t, tt.code, code, "error %v", tt.err)
		assert.NotEmpty(t, msg)
	}

	// Обёртка не меняет маппинг
	code, _ := ToHTTPResponse(e.Wrap("OrderUseCase.PlaceOrder", e.ErrEmptyOrder))
	assert.Equal(t, http.StatusBadRequest, code)

	// Внутренние детали не просачиваются наружу
	_, msg := ToHTTPResponse(assert.AnError)
	assert.Equal(t, e.ErrInternalServerError.Error(), msg)
}
