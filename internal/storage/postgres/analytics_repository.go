package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vladislavdragonenkov/salesops/internal/domain"
)

type analyticsRepository struct {
	db *sql.DB
}

// NewAnalyticsRepository создаёт PostgreSQL-реализацию AnalyticsRepository.
// Рейтинги считаются одним агрегирующим запросом с join на карточку
// клиента либо продавца.
func NewAnalyticsRepository(store *Store) domain.AnalyticsRepository {
	return &analyticsRepository{db: store.DB()}
}

func (r *analyticsRepository) TopCustomers(ctx context.Context) ([]domain.CustomerTotal, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.firstname, c.company, c.email, c.phone, c.salesman_id, c.created_at,
		       SUM(o.total) AS revenue
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.state = 'COMPLETED'
		GROUP BY c.id, c.name, c.firstname, c.company, c.email, c.phone, c.salesman_id, c.created_at
		ORDER BY revenue DESC, c.id
	`)
	if err != nil {
		return nil, fmt.Errorf("rank customers: %w", err)
	}
	defer rows.Close()

	result := make([]domain.CustomerTotal, 0)
	for rows.Next() {
		var entry domain.CustomerTotal
		if err := rows.Scan(
			&entry.Customer.ID, &entry.Customer.Name, &entry.Customer.Firstname,
			&entry.Customer.Company, &entry.Customer.Email, &entry.Customer.Phone,
			&entry.Customer.SalesmanID, &entry.Customer.CreatedAt, &entry.Total,
		); err != nil {
			return nil, fmt.Errorf("scan customer ranking row: %w", err)
		}
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customer ranking rows: %w", err)
	}
	return result, nil
}

// TopSalesmen сортирует по убыванию суммы до применения LIMIT: порядок
// ORDER BY / LIMIT в SQL это гарантирует.
func (r *analyticsRepository) TopSalesmen(ctx context.Context, limit int) ([]domain.SalesmanTotal, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT u.id, u.name, u.firstname, u.email, u.created_at,
		       SUM(o.total) AS revenue
		FROM orders o
		JOIN users u ON u.id = o.salesman_id
		WHERE o.state = 'COMPLETED'
		GROUP BY u.id, u.name, u.firstname, u.email, u.created_at
		ORDER BY revenue DESC, u.id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("rank salesmen: %w", err)
	}
	defer rows.Close()

	result := make([]domain.SalesmanTotal, 0, limit)
	for rows.Next() {
		var entry domain.SalesmanTotal
		if err := rows.Scan(
			&entry.Salesman.ID, &entry.Salesman.Name, &entry.Salesman.Firstname,
			&entry.Salesman.Email, &entry.Salesman.CreatedAt, &entry.Total,
		); err != nil {
			return nil, fmt.Errorf("scan salesman ranking row: %w", err)
		}
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate salesman ranking rows: %w", err)
	}
	return result, nil
}

var _ domain.AnalyticsRepository = (*analyticsRepository)(nil)
