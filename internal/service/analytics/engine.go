package analytics

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/salesops/internal/domain"
)

const (
	// BestSalesmenLimit — размер рейтинга продавцов.
	BestSalesmenLimit = 10
	// SearchLimit — максимум совпадений при поиске по каталогу.
	SearchLimit = 10
)

// Engine отвечает на аналитические запросы: рейтинги по завершённым
// заказам и полнотекстовый поиск по каталогу. Рейтинги считаются
// целиком и только потом усекаются, поэтому порядок детерминирован
// независимо от порядка обхода хранилища.
type Engine struct {
	analytics domain.AnalyticsRepository
	products  domain.ProductRepository
	logger    *log.Entry
}

// NewEngine конструирует аналитический движок.
func NewEngine(analytics domain.AnalyticsRepository, products domain.ProductRepository, logger *log.Entry) *Engine {
	if logger == nil {
		logger = log.New().WithField("component", "analytics")
	}
	return &Engine{
		analytics: analytics,
		products:  products,
		logger:    logger,
	}
}

// BestCustomers возвращает клиентов, упорядоченных по сумме их
// завершённых заказов. Клиенты без завершённых заказов не включаются.
func (e *Engine) BestCustomers(ctx context.Context) ([]domain.CustomerTotal, error) {
	totals, err := e.analytics.TopCustomers(ctx)
	if err != nil {
		e.logger.WithError(err).Error("failed to rank customers")
		return nil, err
	}
	return totals, nil
}

// BestSalesmen возвращает не более десяти продавцов с наибольшей
// выручкой по завершённым заказам.
func (e *Engine) BestSalesmen(ctx context.Context) ([]domain.SalesmanTotal, error) {
	totals, err := e.analytics.TopSalesmen(ctx, BestSalesmenLimit)
	if err != nil {
		e.logger.WithError(err).Error("failed to rank salesmen")
		return nil, err
	}
	return totals, nil
}

// SearchProduct ищет товары по тексту запроса, не более десяти совпадений.
func (e *Engine) SearchProduct(ctx context.Context, text string) ([]domain.Product, error) {
	return e.products.Search(ctx, text, SearchLimit)
}
