package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/vladislavdragonenkov/salesops/internal/domain"
)

// ProductStore — in-memory каталог товаров. Одна структура реализует и
// ProductRepository, и StockLedger: складская книга должна менять те же
// остатки, что видит каталог.
type ProductStore struct {
	mu    sync.RWMutex
	items map[string]domain.Product
}

// NewProductStore возвращает in-memory каталог для локальной разработки и тестов.
func NewProductStore() *ProductStore {
	return &ProductStore{
		items: make(map[string]domain.Product),
	}
}

// Create сохраняет новую карточку товара.
func (s *ProductStore) Create(_ context.Context, product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[product.ID] = product
	return nil
}

// Get возвращает товар или ErrProductNotFound.
func (s *ProductStore) Get(_ context.Context, id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.items[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return product, nil
}

// List возвращает весь каталог, отсортированный по дате создания.
func (s *ProductStore) List(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Product, 0, len(s.items))
	for _, product := range s.items {
		result = append(result, product)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Save перезаписывает карточку товара.
func (s *ProductStore) Save(_ context.Context, product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.items[product.ID]
	if !ok {
		return domain.ErrProductNotFound
	}
	product.CreatedAt = current.CreatedAt
	s.items[product.ID] = product
	return nil
}

// Delete удаляет товар или возвращает ErrProductNotFound.
func (s *ProductStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(s.items, id)
	return nil
}

// Search ищет товары по вхождению слов запроса в название, без учёта
// регистра, возвращая не более limit совпадений.
func (s *ProductStore) Search(_ context.Context, text string, limit int) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	terms := strings.Fields(strings.ToLower(text))
	if len(terms) == 0 {
		return []domain.Product{}, nil
	}

	matched := make([]domain.Product, 0)
	for _, product := range s.items {
		name := strings.ToLower(product.Name)
		for _, term := range terms {
			if strings.Contains(name, term) {
				matched = append(matched, product)
				break
			}
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// ApplyDeltas применяет пакет дельт к остаткам по принципу «всё или ничего»:
// сначала весь пакет проверяется на рабочей копии остатков, и только потом
// остатки записываются. Проверка идёт нарастающим итогом, поэтому повтор
// товара внутри пакета упирается в уже учтённые дельты, а не в исходный
// остаток. Мьютекс хранилища даёт сериализуемость по всему каталогу.
func (s *ProductStore) ApplyDeltas(_ context.Context, deltas []domain.StockDelta) error {
	if len(deltas) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projected := make(map[string]int32, len(deltas))
	for _, delta := range deltas {
		stock, tracked := projected[delta.ProductID]
		if !tracked {
			product, ok := s.items[delta.ProductID]
			if !ok {
				return domain.ErrProductNotFound
			}
			stock = product.Stock
		}
		if stock+delta.Delta < 0 {
			return &domain.InsufficientStockError{
				ProductID: delta.ProductID,
				Requested: -delta.Delta,
				Available: stock,
			}
		}
		projected[delta.ProductID] = stock + delta.Delta
	}

	for productID, stock := range projected {
		product := s.items[productID]
		product.Stock = stock
		s.items[productID] = product
	}
	return nil
}

var (
	_ domain.ProductRepository = (*ProductStore)(nil)
	_ domain.StockLedger       = (*ProductStore)(nil)
)
