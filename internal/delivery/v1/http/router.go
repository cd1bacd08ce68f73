package http

import (
	_ "github.com/ects-tech/shop-backend/docs" // Импорт сгенерированных файлов
	"github.com/ects-tech/shop-backend/internal/domain"
	"github.com/ects-tech/shop-backend/internal/usecase"
	"github.com/ects-tech/shop-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// Init собирает дерево маршрутов. Правила доступа:
// чтение каталога публично, оформление и просмотр заказов требуют входа,
// мутации каталога — роли admin.
func (r *Router) Init(tokens TokenValidator, authUC usecase.AuthUC, catalogUC usecase.CatalogUC, orderUC usecase.OrderUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(Authenticate(tokens))

		registerAuthRoutes(v1, NewAuthHandler(authUC, r.logger))
		registerProductRoutes(v1, NewProductHandler(catalogUC, r.logger))
		registerCategoryRoutes(v1, NewCategoryHandler(catalogUC, r.logger))
		registerOrderRoutes(v1, NewOrderHandler(orderUC, r.logger))
	})
}

func registerAuthRoutes(router chi.Router, handler *AuthHandler) {
	router.Route("/auth", func(auth chi.Router) {
		auth.Post("/registration", handler.registration)
		auth.Post("/login", handler.login)
	})
}

func registerProductRoutes(router chi.Router, handler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", handler.listProducts)
		pr.Get("/category/{categoryID}", handler.listProductsByCategory)

		pr.Group(func(admin chi.Router) {
			admin.Use(RequireRole(domain.RoleAdmin))
			admin.Post("/", handler.addProduct)
			admin.Put("/{id}", handler.updateProduct)
			admin.Delete("/{id}", handler.deleteProduct)
			admin.Post("/{id}/photo", handler.setProductPhoto)
		})
	})
}

func registerCategoryRoutes(router chi.Router, handler *CategoryHandler) {
	router.Route("/categories", func(cat chi.Router) {
		cat.Get("/", handler.listCategories)

		cat.Group(func(admin chi.Router) {
			admin.Use(RequireRole(domain.RoleAdmin))
			admin.Post("/", handler.createCategory)
			admin.Delete("/{id}", handler.deleteCategory)
		})
	})
}

func registerOrderRoutes(router chi.Router, handler *OrderHandler) {
	router.Route("/orders", func(ord chi.Router) {
		ord.Use(RequireAuth)
		ord.Post("/", handler.placeOrder)
		ord.Get("/user/{userID}", handler.listOrdersByUser)
	})
}
