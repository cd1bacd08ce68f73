package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ects-tech/shop-backend/internal/domain"
	"github.com/ects-tech/shop-backend/internal/usecase"
	"github.com/ects-tech/shop-backend/pkg/e"
	"github.com/ects-tech/shop-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, logger: logger}
}

type productRequest struct {
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	Price       json.Number `json:"price"`
	CategoryID  int64       `json:"categoryId"`
}

type productResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	Photo        *string `json:"photo,omitempty"`
	Price        string  `json:"price"`
	CategoryID   int64   `json:"categoryId"`
	CategoryName string  `json:"categoryName,omitempty"`
}

func newProductResponse(product *domain.Product) productResponse {
	return productResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Photo:       product.Photo,
		Price:       formatCents(product.Price),
		CategoryID:  product.CategoryID,
	}
}

func toProductResponses(infos []usecase.ProductInfo) []productResponse {
	result := make([]productResponse, 0, len(infos))
	for _, info := range infos {
		result = append(result, productResponse{
			ID:           info.ID,
			Name:         info.Name,
			Description:  info.Description,
			Photo:        info.Photo,
			Price:        formatCents(info.Price),
			CategoryID:   info.CategoryID,
			CategoryName: info.CategoryName,
		})
	}
	return result
}

// listProducts
//
//	@Summary	Список всех товаров каталога
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}		productResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.catalogUsecase.ListProducts(r.Context())
	if err != nil {
		p.logger.Warnf("list products failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponses(products))
}

// listProductsByCategory
//
//	@Summary	Список товаров категории
//	@Tags		products
//	@Produce	json
//	@Param		categoryID	path		int	true	"ID категории"
//	@Success	200			{array}		productResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/products/category/{categoryID} [get]
func (p *ProductHandler) listProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	products, err := p.catalogUsecase.ListProductsByCategory(r.Context(), categoryID)
	if err != nil {
		p.logger.Warnf("list products by category failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponses(products))
}

// addProduct
//
//	@Summary	Добавление товара
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		input	body		productRequest	true	"Поля товара"
//	@Success	201		{object}	productResponse
//	@Failure	400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure	403		{object}	ErrorResponse	"Нужна роль admin"
//	@Security	BearerAuth
//	@Router		/products [post]
func (p *ProductHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	req, err := parseProductRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.catalogUsecase.AddProduct(r.Context(), &usecase.AddProductReq{
		Name:        req.name,
		Description: req.description,
		Price:       req.price,
		CategoryID:  req.categoryID,
	})
	if err != nil {
		p.logger.Warnf("add product failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newProductResponse(product))
}

// updateProduct
//
//	@Summary	Обновление товара
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"ID товара"
//	@Param		input	body		productRequest	true	"Новые поля товара"
//	@Success	200		{object}	productResponse
//	@Failure	404		{object}	ErrorResponse	"Товар не найден"
//	@Security	BearerAuth
//	@Router		/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	req, err := parseProductRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.catalogUsecase.UpdateProduct(r.Context(), &usecase.UpdateProductReq{
		ID:          id,
		Name:        req.name,
		Description: req.description,
		Price:       req.price,
		CategoryID:  req.categoryID,
	})
	if err != nil {
		p.logger.Warnf("update product failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(product))
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	productResponse
//	@Failure	404	{object}	ErrorResponse	"Товар не найден"
//	@Security	BearerAuth
//	@Router		/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	product, err := p.catalogUsecase.DeleteProduct(r.Context(), id)
	if err != nil {
		p.logger.Warnf("delete product failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(product))
}

// setProductPhoto
//
//	@Summary		Загрузка фотографии товара
//	@Description	Принимает PNG до 2 МиБ, формат определяется по содержимому
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		int						true	"ID товара"
//	@Param			photo	formData	file					true	"Файл PNG"
//	@Success		200		{object}	map[string]interface{}	"Ключ объекта"
//	@Failure		413		{object}	ErrorResponse			"Файл больше 2 МиБ"
//	@Failure		415		{object}	ErrorResponse			"Не PNG"
//	@Security		BearerAuth
//	@Router			/products/{id}/photo [post]
func (p *ProductHandler) setProductPhoto(w http.ResponseWriter, r *http.Request) {
	const (
		// Запас поверх лимита файла: границы и поля multipart-формы.
		maxTotalRequestSize = (2 << 20) + (1 << 20)
		maxMemory           = 4 << 20
	)

	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	files := r.MultipartForm.File["photo"]
	if len(files) == 0 {
		WriteError(w, e.ErrMissingFields)
		return
	}

	data, mimeType, err := readFile(files[0], 2<<20)
	if err != nil {
		WriteError(w, err)
		return
	}

	objectKey, err := p.catalogUsecase.SetProductPhoto(r.Context(), id,
		usecase.NewPhotoUpload(data, mimeType, int64(len(data)), files[0].Filename))
	if err != nil {
		p.logger.Warnf("set product photo failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"photo": objectKey,
	})
}

type parsedProduct struct {
	name        string
	description *string
	price       int64
	categoryID  int64
}

func parseProductRequest(r *http.Request) (*parsedProduct, error) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, e.ErrStatusBadRequest
	}

	price, err := parsePriceToCents(req.Price.String())
	if err != nil {
		return nil, err
	}

	return &parsedProduct{
		name:        req.Name,
		description: req.Description,
		price:       price,
		categoryID:  req.CategoryID,
	}, nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, e.ErrStatusBadRequest
	}
	return id, nil
}
