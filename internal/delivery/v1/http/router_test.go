package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ects-tech/shop-backend/internal/cfg"
	"github.com/ects-tech/shop-backend/internal/domain"
	"github.com/ects-tech/shop-backend/internal/token"
	"github.com/ects-tech/shop-backend/internal/usecase"
	"github.com/ects-tech/shop-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...any)            {}
func (noopLogger) Infof(format string, args ...any)             {}
func (noopLogger) Warnf(format string, args ...any)             {}
func (noopLogger) Errorf(err error, format string, args ...any) {}

type stubAuthUC struct{}

func (stubAuthUC) Register(ctx context.Context, req *usecase.RegisterReq) (*domain.User, error) {
	return &domain.User{ID: 1, Username: req.Username}, nil
}

func (stubAuthUC) Login(ctx context.Context, username, password string) (string, error) {
	return "stub-token", nil
}

type stubCatalogUC struct{}

func (stubCatalogUC) ListProducts(ctx context.Context) ([]usecase.ProductInfo, error) {
	return []usecase.ProductInfo{{ID: 1, Name: "товар", Price: 59999, CategoryID: 1}}, nil
}

func (stubCatalogUC) ListProductsByCategory(ctx context.Context, categoryID int64) ([]usecase.ProductInfo, error) {
	return nil, nil
}

func (stubCatalogUC) AddProduct(ctx context.Context, req *usecase.AddProductReq) (*domain.Product, error) {
	return &domain.Product{ID: 1, Name: req.Name, Price: req.Price, CategoryID: req.CategoryID}, nil
}

func (stubCatalogUC) UpdateProduct(ctx context.Context, req *usecase.UpdateProductReq) (*domain.Product, error) {
	return &domain.Product{ID: req.ID, Name: req.Name, Price: req.Price, CategoryID: req.CategoryID}, nil
}

func (stubCatalogUC) DeleteProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return &domain.Product{ID: id}, nil
}

func (stubCatalogUC) SetProductPhoto(ctx context.Context, productID int64, upload *usecase.PhotoUpload) (string, error) {
	return "photo.png", nil
}

func (stubCatalogUC) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	return &domain.Category{ID: 1, Name: name}, nil
}

func (stubCatalogUC) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return nil, nil
}

func (stubCatalogUC) DeleteCategory(ctx context.Context, id int64) error {
	return nil
}

type stubOrderUC struct{}

func (stubOrderUC) PlaceOrder(ctx context.Context, identity domain.Identity, req *usecase.PlaceOrderReq) (int64, error) {
	if identity.IsAnonymous() {
		return 0, e.ErrUnauthorized
	}
	return 77, nil
}

func (stubOrderUC) ListOrdersForUser(ctx context.Context, identity domain.Identity, userID int64) ([]usecase.OrderInfo, error) {
	if identity.UserID != userID && !identity.HasRole(domain.RoleAdmin) {
		return nil, e.ErrForbidden
	}
	return []usecase.OrderInfo{}, nil
}

func newTestRouter(t *testing.T) (http.Handler, *token.Service) {
	t.Helper()

	tokens := token.NewService(&cfg.AuthCfg{
		SigningKey: []byte("test-signing-key-0123456789abcdef"),
		Issuer:     "ects",
		TokenTTL:   12 * time.Hour,
	})

	mux := chi.NewRouter()
	NewRouter(mux, noopLogger{}).Init(tokens, stubAuthUC{}, stubCatalogUC{}, stubOrderUC{})

	return mux, tokens
}

func issueToken(t *testing.T, tokens *token.Service, userID int64, roles ...string) string {
	t.Helper()

	signed, err := tokens.Issue(domain.NewIdentity(userID, "tester", roles))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, handler http.Handler, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicCatalogReads(t *testing.T) {
	t.Parallel()

	handler, _ := newTestRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/products", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/categories", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/products/category/1", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CatalogMutationRequiresAdmin(t *testing.T) {
	t.Parallel()

	handler, tokens := newTestRouter(t)
	body := map[string]any{"name": "товар", "price": 599.99, "categoryId": 1}

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/products", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	clientToken := issueToken(t, tokens, 5, domain.RoleClient)
	rec = doJSON(t, handler, http.MethodPost, "/api/v1/products", clientToken, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := issueToken(t, tokens, 9, domain.RoleAdmin)
	rec = doJSON(t, handler, http.MethodPost, "/api/v1/products", adminToken, body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created productResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "599.99", created.Price)
}

func TestRouter_InvalidTokenTreatedAsAnonymous(t *testing.T) {
	t.Parallel()

	handler, _ := newTestRouter(t)

	// Публичное чтение доступно и с мусорным токеном
	rec := doJSON(t, handler, http.MethodGet, "/api/v1/products", "garbage-token", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Защищённая операция с мусорным токеном — как без токена
	rec = doJSON(t, handler, http.MethodPost, "/api/v1/orders", "garbage-token",
		map[string]any{"address": "ул. Ленина, 1", "products": []map[string]any{{"productId": 1, "count": 1}}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_OversizedPhotoUploadRejected(t *testing.T) {
	t.Parallel()

	handler, tokens := newTestRouter(t)
	adminToken := issueToken(t, tokens, 9, domain.RoleAdmin)

	// Тело заметно больше лимита запроса: обрыв чтения должен дать 413, а не 500
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("photo", "big.png")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte{0x42}, 4<<20))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/1/photo", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+adminToken)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)
}

func TestRouter_OrdersRequireAuth(t *testing.T) {
	t.Parallel()

	handler, tokens := newTestRouter(t)
	body := map[string]any{
		"address":  "ул. Ленина, 1",
		"products": []map[string]any{{"productId": 1, "count": 2}},
	}

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/orders", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	clientToken := issueToken(t, tokens, 5, domain.RoleClient)
	rec = doJSON(t, handler, http.MethodPost, "/api/v1/orders", clientToken, body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(77), resp["orderId"])
}

func TestRouter_OrderHistoryOwnOrAdmin(t *testing.T) {
	t.Parallel()

	handler, tokens := newTestRouter(t)

	clientToken := issueToken(t, tokens, 5, domain.RoleClient)
	rec := doJSON(t, handler, http.MethodGet, "/api/v1/orders/user/5", clientToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/orders/user/6", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := issueToken(t, tokens, 9, domain.RoleAdmin)
	rec = doJSON(t, handler, http.MethodGet, "/api/v1/orders/user/6", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RegistrationAndLoginArePublic(t *testing.T) {
	t.Parallel()

	handler, _ := newTestRouter(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/auth/registration", "",
		map[string]string{"username": "alice", "email": "alice@example.com", "password": "Abcdefg1"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/auth/login", "",
		map[string]string{"username": "alice", "password": "Abcdefg1"})
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "stub-token", resp["token"])
}
