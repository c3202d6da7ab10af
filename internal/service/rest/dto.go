package rest

import (
	"time"

	"github.com/vladislavdragonenkov/salesops/internal/domain"
)

// JSON-представления доменных сущностей. PasswordHash наружу не отдаётся.

type userView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Firstname string    `json:"firstname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserView(user domain.User) userView {
	return userView{
		ID:        user.ID,
		Name:      user.Name,
		Firstname: user.Firstname,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

type customerView struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Firstname  string    `json:"firstname"`
	Company    string    `json:"company"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	SalesmanID string    `json:"salesman_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func newCustomerView(customer domain.Customer) customerView {
	return customerView{
		ID:         customer.ID,
		Name:       customer.Name,
		Firstname:  customer.Firstname,
		Company:    customer.Company,
		Email:      customer.Email,
		Phone:      customer.Phone,
		SalesmanID: customer.SalesmanID,
		CreatedAt:  customer.CreatedAt,
	}
}

func newCustomerViews(customers []domain.Customer) []customerView {
	views := make([]customerView, 0, len(customers))
	for _, customer := range customers {
		views = append(views, newCustomerView(customer))
	}
	return views
}

type productView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Stock     int32     `json:"stock"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

func newProductView(product domain.Product) productView {
	return productView{
		ID:        product.ID,
		Name:      product.Name,
		Stock:     product.Stock,
		Price:     product.Price,
		CreatedAt: product.CreatedAt,
	}
}

func newProductViews(products []domain.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product))
	}
	return views
}

type orderItemView struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int32   `json:"quantity"`
	Price     float64 `json:"price"`
}

type orderView struct {
	ID         string          `json:"id"`
	Items      []orderItemView `json:"items"`
	Total      float64         `json:"total"`
	CustomerID string          `json:"customer_id"`
	SalesmanID string          `json:"salesman_id"`
	State      string          `json:"state"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func newOrderView(order domain.Order) orderView {
	items := make([]orderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemView{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return orderView{
		ID:         order.ID,
		Items:      items,
		Total:      order.Total,
		CustomerID: order.CustomerID,
		SalesmanID: order.SalesmanID,
		State:      string(order.State),
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}

func newOrderViews(orders []domain.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}
	return views
}

type customerTotalView struct {
	Customer customerView `json:"customer"`
	Total    float64      `json:"total"`
}

type salesmanTotalView struct {
	Salesman userView `json:"salesman"`
	Total    float64  `json:"total"`
}
