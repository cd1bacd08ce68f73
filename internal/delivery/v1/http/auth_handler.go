package http

import (
	"encoding/json"
	"net/http"

	"github.com/ects-tech/shop-backend/internal/usecase"
	"github.com/ects-tech/shop-backend/pkg/e"
	"github.com/ects-tech/shop-backend/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, logger: logger}
}

type registrationRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// registration
//
//	@Summary		Регистрация нового пользователя
//	@Description	Создает учётную запись с ролью client
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			input	body		registrationRequest		true	"Данные пользователя"
//	@Success		201		{object}	map[string]interface{}	"Успешная регистрация"
//	@Failure		400		{object}	ErrorResponse			"Ошибка валидации"
//	@Failure		409		{object}	ErrorResponse			"Имя или почта заняты"
//	@Router			/auth/registration [post]
func (a *AuthHandler) registration(w http.ResponseWriter, r *http.Request) {
	var req registrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	user, err := a.authUsecase.Register(r.Context(), usecase.NewRegisterReq(req.Username, req.Email, req.Password))
	if err != nil {
		a.logger.Warnf("registration failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
	})
}

// login
//
//	@Summary		Вход по логину и паролю
//	@Description	Выпускает токен доступа на 12 часов
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			input	body		loginRequest			true	"Учётные данные"
//	@Success		200		{object}	map[string]interface{}	"Токен доступа"
//	@Failure		401		{object}	ErrorResponse			"Неверные учётные данные"
//	@Router			/auth/login [post]
func (a *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrInvalidCredentials)
		return
	}

	token, err := a.authUsecase.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		a.logger.Warnf("login failed for %q", req.Username)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"token": token,
	})
}
