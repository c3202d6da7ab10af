package memory

import (
	"context"
	"errors"
	"sort"

	"github.com/vladislavdragonenkov/salesops/internal/domain"
)

// analyticsRepositoryInMemory считает рейтинги по завершённым заказам поверх
// остальных in-memory репозиториев. Постоянное хранилище выполняет ту же
// работу одним агрегирующим запросом.
type analyticsRepositoryInMemory struct {
	orders    domain.OrderRepository
	customers domain.CustomerRepository
	users     domain.UserRepository
}

// NewAnalyticsRepository создаёт in-memory реализацию AnalyticsRepository.
func NewAnalyticsRepository(
	orders domain.OrderRepository,
	customers domain.CustomerRepository,
	users domain.UserRepository,
) domain.AnalyticsRepository {
	return &analyticsRepositoryInMemory{
		orders:    orders,
		customers: customers,
		users:     users,
	}
}

// TopCustomers группирует завершённые заказы по клиенту и сортирует по
// убыванию суммы. Ограничения на размер выборки нет.
func (r *analyticsRepositoryInMemory) TopCustomers(ctx context.Context) ([]domain.CustomerTotal, error) {
	totals, err := r.completedTotals(ctx, func(o domain.Order) string { return o.CustomerID })
	if err != nil {
		return nil, err
	}

	result := make([]domain.CustomerTotal, 0, len(totals))
	for customerID, total := range totals {
		customer, err := r.customers.Get(ctx, customerID)
		if err != nil {
			// Заказ может пережить удалённого клиента; такие группы пропускаем.
			if errors.Is(err, domain.ErrCustomerNotFound) {
				continue
			}
			return nil, err
		}
		result = append(result, domain.CustomerTotal{Customer: customer, Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].Customer.ID < result[j].Customer.ID
	})
	return result, nil
}

// TopSalesmen группирует завершённые заказы по продавцу. Сортировка всегда
// выполняется до усечения, иначе вместо топа получится произвольный срез.
func (r *analyticsRepositoryInMemory) TopSalesmen(ctx context.Context, limit int) ([]domain.SalesmanTotal, error) {
	totals, err := r.completedTotals(ctx, func(o domain.Order) string { return o.SalesmanID })
	if err != nil {
		return nil, err
	}

	result := make([]domain.SalesmanTotal, 0, len(totals))
	for salesmanID, total := range totals {
		user, err := r.users.Get(ctx, salesmanID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		result = append(result, domain.SalesmanTotal{Salesman: user, Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].Salesman.ID < result[j].Salesman.ID
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *analyticsRepositoryInMemory) completedTotals(ctx context.Context, key func(domain.Order) string) (map[string]float64, error) {
	orders, err := r.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	for _, order := range orders {
		if order.State != domain.OrderStateCompleted {
			continue
		}
		totals[key(order)] += order.Total
	}
	return totals, nil
}

var _ domain.AnalyticsRepository = (*analyticsRepositoryInMemory)(nil)
