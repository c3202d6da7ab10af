package order

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/salesops/internal/domain"
	"github.com/vladislavdragonenkov/salesops/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/salesops/internal/metrics"
	"github.com/vladislavdragonenkov/salesops/internal/service/auth"
)

const outboxAggregateOrder = "order"

// ItemInput — запрошенная позиция заказа: товар и количество.
type ItemInput struct {
	ProductID string
	Quantity  int32
}

// CreateInput — входные данные создания заказа. Total принимается от
// вызывающей стороны, как и в обороте API; State по умолчанию PENDING.
type CreateInput struct {
	CustomerID string
	Items      []ItemInput
	Total      float64
	State      string
}

// UpdateInput — входные данные обновления заказа. Нулевые поля означают
// «оставить как есть»: nil Items сохраняет состав заказа без пересчёта
// остатков.
type UpdateInput struct {
	CustomerID string
	Items      []ItemInput
	Total      *float64
	State      *string
}

// Service оркестрирует мутации заказов: проверку владения, пересчёт
// остатков через складскую книгу и запись заказа. Пакет дельт применяется
// по принципу «всё или ничего», поэтому отказ по любой позиции оставляет
// остатки всех товаров нетронутыми.
type Service struct {
	orders    domain.OrderRepository
	customers domain.CustomerRepository
	products  domain.ProductRepository
	ledger    domain.StockLedger
	outbox    domain.OutboxRepository
	guard     auth.Guard
	metrics   *metrics.OrderMetrics
	logger    *log.Entry
}

// NewService конструирует сервис заказов. outbox может быть nil — тогда
// события не публикуются.
func NewService(
	orders domain.OrderRepository,
	customers domain.CustomerRepository,
	products domain.ProductRepository,
	ledger domain.StockLedger,
	outbox domain.OutboxRepository,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "order-service")
	}
	return &Service{
		orders:    orders,
		customers: customers,
		products:  products,
		ledger:    ledger,
		outbox:    outbox,
		guard:     auth.NewGuard(),
		metrics:   metrics.NewOrderMetrics(),
		logger:    logger,
	}
}

// Create создаёт заказ от имени продавца actingUserID. Списание остатков
// по всем позициям выполняется одним пакетом до записи заказа; при
// нехватке любого товара ни остатки, ни заказ не меняются.
func (s *Service) Create(ctx context.Context, actingUserID string, input CreateInput) (domain.Order, error) {
	started := time.Now()
	defer func() { s.metrics.RecordOperationDuration("create", time.Since(started)) }()

	state := domain.OrderStatePending
	if input.State != "" {
		parsed, err := domain.ParseOrderState(input.State)
		if err != nil {
			return domain.Order{}, err
		}
		state = parsed
	}

	customer, err := s.customers.Get(ctx, input.CustomerID)
	if err != nil {
		return domain.Order{}, err
	}
	if err := s.guard.Authorize(actingUserID, customer.SalesmanID); err != nil {
		return domain.Order{}, err
	}

	items, deltas, err := s.resolveItems(ctx, input.Items, nil)
	if err != nil {
		return domain.Order{}, err
	}

	now := time.Now().UTC()
	order := domain.Order{
		ID:         uuid.NewString(),
		Items:      items,
		Total:      input.Total,
		CustomerID: customer.ID,
		SalesmanID: actingUserID,
		State:      state,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if errs := order.ValidateInvariants(); len(errs) > 0 {
		return domain.Order{}, errs[0]
	}

	if err := s.applyDeltas(ctx, deltas); err != nil {
		return domain.Order{}, err
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.compensate(ctx, deltas, "Create")
		s.logger.WithError(err).WithField("order_id", order.ID).Error("failed to persist order")
		return domain.Order{}, fmt.Errorf("persist order: %w", err)
	}

	s.metrics.RecordOrderCreated()
	s.enqueueEvent(kafka.EventTypeOrderCreated, order, deltas)
	return order, nil
}

// Update изменяет заказ. Дельта по каждой пересмотренной позиции — это
// разница между прежним и новым количеством; товар, которого в заказе не
// было, считается с прежним количеством ноль.
func (s *Service) Update(ctx context.Context, actingUserID, orderID string, input UpdateInput) (domain.Order, error) {
	started := time.Now()
	defer func() { s.metrics.RecordOperationDuration("update", time.Since(started)) }()

	existing, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if err := s.guard.Authorize(actingUserID, existing.SalesmanID); err != nil {
		return domain.Order{}, err
	}

	customerID := input.CustomerID
	if customerID == "" {
		customerID = existing.CustomerID
	}
	customer, err := s.customers.Get(ctx, customerID)
	if err != nil {
		return domain.Order{}, err
	}
	if err := s.guard.Authorize(actingUserID, customer.SalesmanID); err != nil {
		return domain.Order{}, err
	}

	updated := existing
	updated.CustomerID = customer.ID
	updated.UpdatedAt = time.Now().UTC()
	if input.Total != nil {
		updated.Total = *input.Total
	}
	if input.State != nil {
		parsed, err := domain.ParseOrderState(*input.State)
		if err != nil {
			return domain.Order{}, err
		}
		updated.State = parsed
	}

	var deltas []domain.StockDelta
	if input.Items != nil {
		items, itemDeltas, err := s.resolveItems(ctx, input.Items, &existing)
		if err != nil {
			return domain.Order{}, err
		}
		updated.Items = items
		deltas = itemDeltas
	}

	if errs := updated.ValidateInvariants(); len(errs) > 0 {
		return domain.Order{}, errs[0]
	}

	if err := s.applyDeltas(ctx, deltas); err != nil {
		return domain.Order{}, err
	}

	if err := s.orders.Save(ctx, updated); err != nil {
		s.compensate(ctx, deltas, "Update")
		s.logger.WithError(err).WithField("order_id", orderID).Error("failed to save order")
		return domain.Order{}, fmt.Errorf("save order: %w", err)
	}

	s.metrics.RecordOrderUpdated()
	s.enqueueEvent(kafka.EventTypeOrderUpdated, updated, deltas)
	return updated, nil
}

// Delete удаляет заказ, восстанавливая остатки по каждой его позиции
// одним пакетом.
func (s *Service) Delete(ctx context.Context, actingUserID, orderID string) error {
	started := time.Now()
	defer func() { s.metrics.RecordOperationDuration("delete", time.Since(started)) }()

	existing, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if err := s.guard.Authorize(actingUserID, existing.SalesmanID); err != nil {
		return err
	}

	deltas := make([]domain.StockDelta, 0, len(existing.Items))
	for _, item := range existing.Items {
		deltas = append(deltas, domain.StockDelta{ProductID: item.ProductID, Delta: item.Quantity})
	}

	if err := s.applyDeltas(ctx, deltas); err != nil {
		return err
	}

	if err := s.orders.Delete(ctx, orderID); err != nil {
		s.compensate(ctx, deltas, "Delete")
		s.logger.WithError(err).WithField("order_id", orderID).Error("failed to delete order")
		return fmt.Errorf("delete order: %w", err)
	}

	s.metrics.RecordOrderDeleted()
	s.enqueueEvent(kafka.EventTypeOrderDeleted, existing, deltas)
	return nil
}

// Get возвращает заказ владельцу.
func (s *Service) Get(ctx context.Context, actingUserID, orderID string) (domain.Order, error) {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if err := s.guard.Authorize(actingUserID, order.SalesmanID); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// List возвращает все заказы без фильтра по владельцу.
func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// ListOwned возвращает заказы продавца.
func (s *Service) ListOwned(ctx context.Context, actingUserID string) ([]domain.Order, error) {
	if actingUserID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.orders.ListBySalesman(ctx, actingUserID)
}

// ListOwnedByState возвращает заказы продавца в заданном статусе.
func (s *Service) ListOwnedByState(ctx context.Context, actingUserID, state string) ([]domain.Order, error) {
	if actingUserID == "" {
		return nil, domain.ErrUnauthenticated
	}
	parsed, err := domain.ParseOrderState(state)
	if err != nil {
		return nil, err
	}
	return s.orders.ListBySalesmanState(ctx, actingUserID, parsed)
}

// resolveItems строит позиции заказа по карточкам товаров и считает дельты
// остатков. previous == nil означает создание: прежнее количество ноль.
// Повторы товара во входном списке складываются в одну позицию, поэтому
// прежнее количество зачитывается ровно один раз на товар и в пакете
// дельт каждый товар встречается не более одного раза.
func (s *Service) resolveItems(ctx context.Context, inputs []ItemInput, previous *domain.Order) ([]domain.OrderItem, []domain.StockDelta, error) {
	productIDs := make([]string, 0, len(inputs))
	quantities := make(map[string]int32, len(inputs))
	for _, input := range inputs {
		if input.Quantity <= 0 {
			return nil, nil, domain.ErrItemQtyInvalid
		}
		if _, seen := quantities[input.ProductID]; !seen {
			productIDs = append(productIDs, input.ProductID)
		}
		quantities[input.ProductID] += input.Quantity
	}

	items := make([]domain.OrderItem, 0, len(productIDs))
	deltas := make([]domain.StockDelta, 0, len(productIDs))
	for _, productID := range productIDs {
		quantity := quantities[productID]

		product, err := s.products.Get(ctx, productID)
		if err != nil {
			return nil, nil, err
		}

		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  quantity,
			Price:     product.Price,
		})

		var previousQty int32
		if previous != nil {
			previousQty = previous.ItemQuantity(product.ID)
		}
		if delta := previousQty - quantity; delta != 0 {
			deltas = append(deltas, domain.StockDelta{ProductID: product.ID, Delta: delta})
		}
	}

	return items, deltas, nil
}

func (s *Service) applyDeltas(ctx context.Context, deltas []domain.StockDelta) error {
	if len(deltas) == 0 {
		return nil
	}
	if err := s.ledger.ApplyDeltas(ctx, deltas); err != nil {
		if domain.IsInsufficientStock(err) {
			s.metrics.RecordInsufficientStock()
		}
		return err
	}
	return nil
}

// compensate возвращает остатки после неудачной записи заказа, применяя
// инверсию пакета. Ошибка компенсации только логируется: состояние до
// вызова уже потеряно, и дальнейшее решение за оператором.
func (s *Service) compensate(ctx context.Context, deltas []domain.StockDelta, operation string) {
	if len(deltas) == 0 {
		return
	}
	inverse := make([]domain.StockDelta, 0, len(deltas))
	for _, delta := range deltas {
		inverse = append(inverse, domain.StockDelta{ProductID: delta.ProductID, Delta: -delta.Delta})
	}
	if err := s.ledger.ApplyDeltas(ctx, inverse); err != nil {
		s.logger.WithError(err).WithField("operation", operation).Error("failed to compensate stock deltas")
		return
	}
	s.metrics.RecordStockCompensation()
}

func (s *Service) enqueueEvent(eventType kafka.EventType, order domain.Order, deltas []domain.StockDelta) {
	if s.outbox == nil {
		return
	}

	eventDeltas := make([]kafka.StockDelta, 0, len(deltas))
	for _, delta := range deltas {
		eventDeltas = append(eventDeltas, kafka.StockDelta{ProductID: delta.ProductID, Delta: delta.Delta})
	}
	event := kafka.NewOrderEvent(eventType, order.ID, order.CustomerID, order.SalesmanID, string(order.State), order.Total, eventDeltas)

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to encode order event")
		return
	}
	if _, err := s.outbox.Enqueue(domain.OutboxMessage{
		AggregateType: outboxAggregateOrder,
		AggregateID:   order.ID,
		EventType:     string(eventType),
		Payload:       payload,
	}); err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to enqueue order event")
		return
	}
	s.metrics.RecordOutboxEvent()
}
