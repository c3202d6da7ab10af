package domain

import (
	"errors"
	"fmt"
)

var (
	// Ошибка отсутствующего имени пользователя или клиента.
	ErrNameRequired = errors.New("name is required")
	// Ошибка отсутствующего email.
	ErrEmailRequired = errors.New("email is required")
	// Ошибка отсутствующего пароля при регистрации.
	ErrPasswordRequired = errors.New("password is required")
	// Ошибка отсутствующей компании у клиента.
	ErrCompanyRequired = errors.New("company is required")
	// Ошибка отсутствующего идентификатора клиента в заказе.
	ErrCustomerRequired = errors.New("customer_id is required")
	// Ошибка отсутствия хотя бы одной позиции в заказе.
	ErrItemsRequired = errors.New("order must contain at least one item")
	// Ошибка при некорректном количестве товара (<= 0).
	ErrItemQtyInvalid = errors.New("item quantity must be greater than zero")
	// Ошибка, если цена позиции отрицательная.
	ErrItemPriceInvalid = errors.New("item price must be non-negative")
	// Ошибка отрицательной суммы заказа.
	ErrTotalNegative = errors.New("order total must be non-negative")
	// Ошибка отрицательного остатка при создании/изменении товара.
	ErrStockNegative = errors.New("product stock must be non-negative")
	// Ошибка отрицательной цены товара.
	ErrPriceNegative = errors.New("product price must be non-negative")
	// Ошибка неизвестного статуса заказа.
	ErrOrderStateInvalid = errors.New("unknown order state")

	// ErrUserNotFound возвращается, если пользователь не найден в репозитории.
	ErrUserNotFound = errors.New("user not found")
	// ErrCustomerNotFound возвращается, если клиент не найден.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrProductNotFound возвращается, если товар не найден.
	ErrProductNotFound = errors.New("product not found")
	// ErrOrderNotFound возвращается, если заказ не найден.
	ErrOrderNotFound = errors.New("order not found")

	// ErrEmailAlreadyExists — нарушение уникальности email при регистрации
	// пользователя или клиента.
	ErrEmailAlreadyExists = errors.New("email is already registered")
	// ErrPermissionDenied — ресурс принадлежит другому продавцу.
	ErrPermissionDenied = errors.New("resource belongs to another salesman")
	// ErrUnauthenticated — запрос без действующих учётных данных.
	ErrUnauthenticated = errors.New("valid credentials are required")
	// ErrInvalidCredentials — неверная пара email/пароль при аутентификации.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrOutboxPublish — ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
)

// InsufficientStockError описывает отказ складской книги: запрошено больше,
// чем доступно. Ни одна дельта пакета при этом не применяется.
type InsufficientStockError struct {
	ProductID string
	Requested int32
	Available int32
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// IsInsufficientStock проверяет, является ли ошибка отказом по остаткам.
func IsInsufficientStock(err error) bool {
	var target *InsufficientStockError
	return errors.As(err, &target)
}

// IsValidation проверяет, вызвана ли ошибка некорректным входом.
func IsValidation(err error) bool {
	for _, sentinel := range []error{
		ErrNameRequired, ErrEmailRequired, ErrPasswordRequired, ErrCompanyRequired,
		ErrCustomerRequired, ErrItemsRequired, ErrItemQtyInvalid, ErrItemPriceInvalid,
		ErrTotalNegative, ErrStockNegative, ErrPriceNegative, ErrOrderStateInvalid,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// IsNotFound проверяет, относится ли ошибка к отсутствующему ресурсу.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrOrderNotFound)
}
