package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrOfficeNotFound      = errors.New("office not found")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderDetailNotFound = errors.New("order detail not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrProductLineNotFound = errors.New("product line not found")
	ErrPaymentNotFound     = errors.New("payment not found")

	ErrDuplicateKey        = errors.New("record with this key already exists")
	ErrForeignKeyViolation = errors.New("referenced record does not exist")

	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)
