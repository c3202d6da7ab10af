package domain

import "context"

// UserRepository описывает требования к хранилищу пользователей.
type UserRepository interface {
	// Create сохраняет нового пользователя. Возвращает ErrEmailAlreadyExists,
	// если email уже занят.
	Create(ctx context.Context, user User) error
	// Get возвращает пользователя по идентификатору или ErrUserNotFound.
	Get(ctx context.Context, id string) (User, error)
	// GetByEmail возвращает пользователя по email или ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (User, error)
}

// CustomerRepository описывает требования к хранилищу клиентов.
type CustomerRepository interface {
	// Create сохраняет нового клиента. Возвращает ErrEmailAlreadyExists,
	// если email уже занят.
	Create(ctx context.Context, customer Customer) error
	// Get возвращает клиента по идентификатору или ErrCustomerNotFound.
	Get(ctx context.Context, id string) (Customer, error)
	// List возвращает всех клиентов.
	List(ctx context.Context) ([]Customer, error)
	// ListBySalesman возвращает клиентов, принадлежащих продавцу.
	ListBySalesman(ctx context.Context, salesmanID string) ([]Customer, error)
	// Save перезаписывает данные клиента. SalesmanID не меняется.
	Save(ctx context.Context, customer Customer) error
	// Delete удаляет клиента или возвращает ErrCustomerNotFound.
	Delete(ctx context.Context, id string) error
}

// ProductRepository описывает требования к хранилищу каталога.
type ProductRepository interface {
	Create(ctx context.Context, product Product) error
	// Get возвращает товар по идентификатору или ErrProductNotFound.
	Get(ctx context.Context, id string) (Product, error)
	List(ctx context.Context) ([]Product, error)
	// Save перезаписывает карточку товара целиком (включая остаток) —
	// используется только операциями каталога, не складской книгой.
	Save(ctx context.Context, product Product) error
	Delete(ctx context.Context, id string) error
	// Search выполняет полнотекстовый поиск по названию, возвращая
	// не более limit совпадений.
	Search(ctx context.Context, text string, limit int) ([]Product, error)
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	Create(ctx context.Context, order Order) error
	// Get возвращает заказ по идентификатору или ErrOrderNotFound.
	Get(ctx context.Context, id string) (Order, error)
	List(ctx context.Context) ([]Order, error)
	// ListBySalesman возвращает заказы продавца.
	ListBySalesman(ctx context.Context, salesmanID string) ([]Order, error)
	// ListBySalesmanState возвращает заказы продавца в заданном статусе.
	ListBySalesmanState(ctx context.Context, salesmanID string, state OrderState) ([]Order, error)
	// Save перезаписывает заказ.
	Save(ctx context.Context, order Order) error
	// Delete удаляет заказ или возвращает ErrOrderNotFound.
	Delete(ctx context.Context, id string) error
}

// CustomerTotal — суммарная выручка по завершённым заказам клиента.
type CustomerTotal struct {
	Customer Customer
	Total    float64
}

// SalesmanTotal — суммарная выручка по завершённым заказам продавца.
type SalesmanTotal struct {
	Salesman User
	Total    float64
}

// AnalyticsRepository выполняет агрегирующие запросы по завершённым заказам.
type AnalyticsRepository interface {
	// TopCustomers группирует завершённые заказы по клиенту, суммирует
	// total и возвращает результат по убыванию суммы без ограничения.
	TopCustomers(ctx context.Context) ([]CustomerTotal, error)
	// TopSalesmen делает то же по продавцам. Сортировка выполняется до
	// усечения до limit записей.
	TopSalesmen(ctx context.Context, limit int) ([]SalesmanTotal, error)
}
