package rest

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/salesops/internal/domain"
	"github.com/vladislavdragonenkov/salesops/internal/metrics"
	"github.com/vladislavdragonenkov/salesops/internal/service/analytics"
	"github.com/vladislavdragonenkov/salesops/internal/service/auth"
	"github.com/vladislavdragonenkov/salesops/internal/service/order"
)

// Server — JSON-over-HTTP фасад сервиса. Каждая операция отображается на
// один маршрут; проверка владения выполняется сервисами и guard, а не
// маршрутизацией.
type Server struct {
	users     domain.UserRepository
	customers domain.CustomerRepository
	products  domain.ProductRepository
	orders    *order.Service
	analytics *analytics.Engine
	hasher    auth.PasswordHasher
	tokens    *auth.TokenIssuer
	guard     auth.Guard
	metrics   *metrics.HTTPMetrics
	logger    *log.Entry
}

// NewServer конструирует HTTP-фасад.
func NewServer(
	users domain.UserRepository,
	customers domain.CustomerRepository,
	products domain.ProductRepository,
	orders *order.Service,
	analyticsEngine *analytics.Engine,
	hasher auth.PasswordHasher,
	tokens *auth.TokenIssuer,
	logger *log.Entry,
) *Server {
	if logger == nil {
		logger = log.New().WithField("component", "rest")
	}
	return &Server{
		users:     users,
		customers: customers,
		products:  products,
		orders:    orders,
		analytics: analyticsEngine,
		hasher:    hasher,
		tokens:    tokens,
		guard:     auth.NewGuard(),
		metrics:   metrics.NewHTTPMetrics(),
		logger:    logger,
	}
}

// Handler собирает маршруты API. Операции без пометки владельца доступны
// без учётных данных; остальные требуют Bearer-токен.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/users", s.handleNewUser)
	mux.HandleFunc("POST /api/v1/auth/token", s.handleAuthenticate)
	mux.HandleFunc("GET /api/v1/users/me", s.requireAuth(s.handleGetSelf))

	mux.HandleFunc("GET /api/v1/products", s.handleListProducts)
	mux.HandleFunc("GET /api/v1/products/search", s.handleSearchProducts)
	mux.HandleFunc("GET /api/v1/products/{id}", s.handleGetProduct)
	mux.HandleFunc("POST /api/v1/products", s.handleNewProduct)
	mux.HandleFunc("PUT /api/v1/products/{id}", s.handleUpdateProduct)
	mux.HandleFunc("DELETE /api/v1/products/{id}", s.handleDeleteProduct)

	mux.HandleFunc("GET /api/v1/customers", s.handleListCustomers)
	mux.HandleFunc("GET /api/v1/customers/mine", s.requireAuth(s.handleListOwnCustomers))
	mux.HandleFunc("GET /api/v1/customers/{id}", s.requireAuth(s.handleGetCustomer))
	mux.HandleFunc("POST /api/v1/customers", s.requireAuth(s.handleNewCustomer))
	mux.HandleFunc("PUT /api/v1/customers/{id}", s.requireAuth(s.handleUpdateCustomer))
	mux.HandleFunc("DELETE /api/v1/customers/{id}", s.requireAuth(s.handleDeleteCustomer))

	mux.HandleFunc("GET /api/v1/orders", s.handleListOrders)
	mux.HandleFunc("GET /api/v1/orders/mine", s.requireAuth(s.handleListOwnOrders))
	mux.HandleFunc("GET /api/v1/orders/{id}", s.requireAuth(s.handleGetOrder))
	mux.HandleFunc("POST /api/v1/orders", s.requireAuth(s.handleNewOrder))
	mux.HandleFunc("PUT /api/v1/orders/{id}", s.requireAuth(s.handleUpdateOrder))
	mux.HandleFunc("DELETE /api/v1/orders/{id}", s.requireAuth(s.handleDeleteOrder))

	mux.HandleFunc("GET /api/v1/analytics/best-customers", s.handleBestCustomers)
	mux.HandleFunc("GET /api/v1/analytics/best-salesmen", s.handleBestSalesmen)

	return s.instrument(mux)
}
