package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/salesops/internal/domain"
	"github.com/vladislavdragonenkov/salesops/internal/storage/memory"
)

func newOrder(id, salesmanID string, state domain.OrderState) domain.Order {
	now := time.Now().UTC()
	return domain.Order{
		ID:         id,
		CustomerID: "customer-1",
		SalesmanID: salesmanID,
		State:      state,
		Total:      500,
		Items: []domain.OrderItem{
			{ProductID: "product-1", Name: "Monitor", Quantity: 5, Price: 100},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestOrderRepository_CreateGet(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()
	order := newOrder("order-1", "user-1", domain.OrderStatePending)

	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.Get(ctx, order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.ID != order.ID || len(stored.Items) != 1 {
		t.Fatalf("unexpected stored order: %+v", stored)
	}

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderRepository_ListBySalesman(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, newOrder("order-1", "user-1", domain.OrderStatePending)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(ctx, newOrder("order-2", "user-2", domain.OrderStatePending)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	orders, err := repo.ListBySalesman(ctx, "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != "order-1" {
		t.Fatalf("unexpected result: %+v", orders)
	}
}

func TestOrderRepository_ListBySalesmanState(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, newOrder("order-1", "user-1", domain.OrderStatePending)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(ctx, newOrder("order-2", "user-1", domain.OrderStateCompleted)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	orders, err := repo.ListBySalesmanState(ctx, "user-1", domain.OrderStateCompleted)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != "order-2" {
		t.Fatalf("unexpected result: %+v", orders)
	}
}

func TestOrderRepository_SaveKeepsSalesman(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, newOrder("order-1", "user-1", domain.OrderStatePending)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated := newOrder("order-1", "user-2", domain.OrderStateCompleted)
	if err := repo.Save(ctx, updated); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	stored, err := repo.Get(ctx, "order-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	// SalesmanID назначается при создании и не перезаписывается.
	if stored.SalesmanID != "user-1" {
		t.Fatalf("salesman must be immutable, got %s", stored.SalesmanID)
	}
	if stored.State != domain.OrderStateCompleted {
		t.Fatalf("expected state to change, got %s", stored.State)
	}
}

func TestOrderRepository_Delete(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, newOrder("order-1", "user-1", domain.OrderStatePending)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Delete(ctx, "order-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.Delete(ctx, "order-1"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
