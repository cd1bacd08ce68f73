package http

import (
	"encoding/json"
	"net/http"

	"github.com/ects-tech/shop-backend/internal/usecase"
	"github.com/ects-tech/shop-backend/pkg/e"
	"github.com/ects-tech/shop-backend/pkg/logger"
)

type CategoryHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCategoryHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{catalogUsecase: catalogUsecase, logger: logger}
}

type categoryRequest struct {
	Name string `json:"name"`
}

type categoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// listCategories
//
//	@Summary	Список категорий товаров
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}	categoryResponse
//	@Router		/categories [get]
func (c *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		c.logger.Warnf("list categories failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, categoryResponse{ID: category.ID, Name: category.Name})
	}

	WriteSuccess(w, http.StatusOK, result)
}

// createCategory
//
//	@Summary	Создание категории
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		input	body		categoryRequest	true	"Название категории"
//	@Success	201		{object}	categoryResponse
//	@Failure	400		{object}	ErrorResponse	"Ошибка валидации"
//	@Security	BearerAuth
//	@Router		/categories [post]
func (c *CategoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	category, err := c.catalogUsecase.CreateCategory(r.Context(), req.Name)
	if err != nil {
		c.logger.Warnf("create category failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, categoryResponse{ID: category.ID, Name: category.Name})
}

// deleteCategory
//
//	@Summary		Удаление категории
//	@Description	Категория с товарами не удаляется
//	@Tags			categories
//	@Produce		json
//	@Param			id	path		int						true	"ID категории"
//	@Success		200	{object}	map[string]interface{}	"Подтверждение удаления"
//	@Failure		404	{object}	ErrorResponse			"Категория не найдена"
//	@Failure		409	{object}	ErrorResponse			"Категория используется"
//	@Security		BearerAuth
//	@Router			/categories/{id} [delete]
func (c *CategoryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if err := c.catalogUsecase.DeleteCategory(r.Context(), id); err != nil {
		c.logger.Warnf("delete category failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"deleted": id,
	})
}
