package kafka

import "time"

// EventType определяет тип события
type EventType string

const (
	// События жизненного цикла заказа
	EventTypeOrderCreated EventType = "order.created"
	EventTypeOrderUpdated EventType = "order.updated"
	EventTypeOrderDeleted EventType = "order.deleted"
)

// Topics для Kafka
const (
	TopicOrderEvents     = "salesops.order.events"
	TopicDeadLetterQueue = "salesops.dlq" // Dead Letter Queue для failed messages
)

// Kafka headers для retry логики
const (
	HeaderRetryCount    = "x-retry-count"
	HeaderOriginalTopic = "x-original-topic"
	HeaderErrorMessage  = "x-error-message"
	HeaderFailedAt      = "x-failed-at"
)

// StockDelta — изменение остатка, применённое вместе с событием заказа.
type StockDelta struct {
	ProductID string `json:"product_id"`
	Delta     int32  `json:"delta"`
}

// OrderEvent представляет событие жизненного цикла заказа.
type OrderEvent struct {
	EventType  EventType    `json:"event_type"`
	OrderID    string       `json:"order_id"`
	CustomerID string       `json:"customer_id"`
	SalesmanID string       `json:"salesman_id"`
	State      string       `json:"state"`
	Total      float64      `json:"total"`
	Deltas     []StockDelta `json:"deltas,omitempty"`
	Timestamp  time.Time    `json:"timestamp"`
}

// NewOrderEvent создает новое событие заказа
func NewOrderEvent(eventType EventType, orderID, customerID, salesmanID, state string, total float64, deltas []StockDelta) *OrderEvent {
	return &OrderEvent{
		EventType:  eventType,
		OrderID:    orderID,
		CustomerID: customerID,
		SalesmanID: salesmanID,
		State:      state,
		Total:      total,
		Deltas:     deltas,
		Timestamp:  time.Now().UTC(),
	}
}
