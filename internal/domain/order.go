package domain

import "time"

// OrderState описывает жизненный цикл заказа.
type OrderState string

const (
	// OrderStatePending — заказ создан, но ещё не завершён.
	OrderStatePending OrderState = "PENDING"
	// OrderStateCompleted — заказ завершён; такие заказы участвуют в рейтингах.
	OrderStateCompleted OrderState = "COMPLETED"
	// OrderStateCanceled — заказ отменён.
	OrderStateCanceled OrderState = "CANCELED"
)

// ParseOrderState валидирует строковое представление статуса.
func ParseOrderState(s string) (OrderState, error) {
	switch OrderState(s) {
	case OrderStatePending, OrderStateCompleted, OrderStateCanceled:
		return OrderState(s), nil
	default:
		return "", ErrOrderStateInvalid
	}
}

// OrderItem представляет одну позицию заказа. Name и Price — снимок
// карточки товара на момент добавления позиции.
type OrderItem struct {
	ProductID string
	Name      string
	Quantity  int32
	Price     float64
}

// Order агрегирует состояние заказа и его позиции. SalesmanID берётся из
// действующего пользователя при создании и неизменяем.
type Order struct {
	ID         string
	Items      []OrderItem
	Total      float64
	CustomerID string
	SalesmanID string
	State      OrderState
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.CustomerID == "" {
		errs = append(errs, ErrCustomerRequired)
	}
	if len(o.Items) == 0 {
		errs = append(errs, ErrItemsRequired)
	}
	if o.Total < 0 {
		errs = append(errs, ErrTotalNegative)
	}
	if _, err := ParseOrderState(string(o.State)); err != nil {
		errs = append(errs, err)
	}

	for _, item := range o.Items {
		if item.Quantity <= 0 {
			errs = append(errs, ErrItemQtyInvalid)
		}
		if item.Price < 0 {
			errs = append(errs, ErrItemPriceInvalid)
		}
	}

	return errs
}

// ItemQuantity возвращает суммарное количество по товару в составе
// заказа; повторные позиции одного товара складываются. Для товара,
// которого в заказе нет, количество равно нулю — это важно при
// пересчёте дельт остатков во время обновления.
func (o *Order) ItemQuantity(productID string) int32 {
	var total int32
	for _, item := range o.Items {
		if item.ProductID == productID {
			total += item.Quantity
		}
	}
	return total
}
