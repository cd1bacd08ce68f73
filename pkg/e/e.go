package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrProductNameTooLong   = fmt.Errorf("product name must be at most 100 characters")
	ErrCategoryNameRequired = fmt.Errorf("category name is required")
	ErrCategoryNameTooLong  = fmt.Errorf("category name must be at most 50 characters")
	ErrAddressRequired      = fmt.Errorf("address is required")
	ErrAddressTooLong       = fmt.Errorf("address must be at most 250 characters")
	ErrEmptyOrder           = fmt.Errorf("order must contain at least one product")
	ErrInvalidQuantity      = fmt.Errorf("product quantity must be between 1 and 30")
	ErrUnknownProduct       = fmt.Errorf("invalid product id")
	ErrInvalidCategory      = fmt.Errorf("invalid category")
	ErrUsernameRequired     = fmt.Errorf("username is required")
	ErrInvalidEmail         = fmt.Errorf("invalid email address")
	ErrWeakPassword         = fmt.Errorf("password must be at least 8 characters and contain an uppercase letter, a lowercase letter and a digit")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")

	// 401 Unauthorized
	ErrInvalidCredentials = fmt.Errorf("invalid username or password")
	ErrUnauthorized       = fmt.Errorf("authentication required")
	ErrInvalidToken       = fmt.Errorf("invalid or expired token")

	// 403 Forbidden
	ErrForbidden = fmt.Errorf("operation is not permitted")

	// 404 Not Found
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrCategoryNotFound = fmt.Errorf("category not found")
	ErrUserNotFound     = fmt.Errorf("user not found")
	ErrOrderNotFound    = fmt.Errorf("order not found")

	// 409 Conflict
	ErrDuplicateProduct  = fmt.Errorf("products in order must be unique")
	ErrCategoryInUse     = fmt.Errorf("category is referenced by existing products")
	ErrUserAlreadyExists = fmt.Errorf("username or email is already taken")

	// 413 Payload Too Large / 415 Unsupported Media Type
	ErrFileTooLarge       = fmt.Errorf("max image size is 2MB")
	ErrInvalidPhotoFormat = fmt.Errorf("invalid file format")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
	ErrStorageFailure      = fmt.Errorf("storage failure")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
