package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/salesops/internal/domain"
	"github.com/vladislavdragonenkov/salesops/internal/storage/memory"
)

func seedProducts(t *testing.T, store *memory.ProductStore) {
	t.Helper()
	ctx := context.Background()
	products := []domain.Product{
		{ID: "product-1", Name: "Dell Monitor 24", Stock: 5, Price: 200},
		{ID: "product-2", Name: "Logitech Keyboard", Stock: 10, Price: 50},
		{ID: "product-3", Name: "Dell Laptop", Stock: 2, Price: 1200},
	}
	for _, p := range products {
		if err := store.Create(ctx, p); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
}

func TestProductStore_CreateGet(t *testing.T) {
	store := memory.NewProductStore()
	seedProducts(t, store)

	product, err := store.Get(context.Background(), "product-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if product.Stock != 5 {
		t.Fatalf("expected stock 5, got %d", product.Stock)
	}

	if _, err := store.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductStore_Search(t *testing.T) {
	store := memory.NewProductStore()
	seedProducts(t, store)

	found, err := store.Search(context.Background(), "dell", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(found))
	}

	limited, err := store.Search(context.Background(), "dell", 1)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected limit to cap matches, got %d", len(limited))
	}
}

func TestProductStore_ApplyDeltas(t *testing.T) {
	store := memory.NewProductStore()
	seedProducts(t, store)
	ctx := context.Background()

	err := store.ApplyDeltas(ctx, []domain.StockDelta{
		{ProductID: "product-1", Delta: -3},
		{ProductID: "product-2", Delta: -4},
	})
	if err != nil {
		t.Fatalf("apply deltas failed: %v", err)
	}

	p1, _ := store.Get(ctx, "product-1")
	p2, _ := store.Get(ctx, "product-2")
	if p1.Stock != 2 || p2.Stock != 6 {
		t.Fatalf("unexpected stocks after apply: %d, %d", p1.Stock, p2.Stock)
	}
}

func TestProductStore_ApplyDeltas_AllOrNothing(t *testing.T) {
	store := memory.NewProductStore()
	seedProducts(t, store)
	ctx := context.Background()

	// Первая дельта валидна, вторая превышает остаток: применяться не должно ничего.
	err := store.ApplyDeltas(ctx, []domain.StockDelta{
		{ProductID: "product-1", Delta: -2},
		{ProductID: "product-3", Delta: -5},
	})

	var insufficient *domain.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if insufficient.ProductID != "product-3" || insufficient.Requested != 5 || insufficient.Available != 2 {
		t.Fatalf("unexpected error payload: %+v", insufficient)
	}

	p1, _ := store.Get(ctx, "product-1")
	p3, _ := store.Get(ctx, "product-3")
	if p1.Stock != 5 || p3.Stock != 2 {
		t.Fatalf("stocks changed despite batch failure: %d, %d", p1.Stock, p3.Stock)
	}
}

func TestProductStore_ApplyDeltas_RepeatedProductAggregates(t *testing.T) {
	store := memory.NewProductStore()
	seedProducts(t, store)
	ctx := context.Background()

	// Повторы одного товара в пакете складываются: 2+3 из остатка 5.
	err := store.ApplyDeltas(ctx, []domain.StockDelta{
		{ProductID: "product-1", Delta: -2},
		{ProductID: "product-1", Delta: -3},
	})
	if err != nil {
		t.Fatalf("apply repeated deltas failed: %v", err)
	}

	product, _ := store.Get(ctx, "product-1")
	if product.Stock != 0 {
		t.Fatalf("expected stock 0 after repeated deltas, got %d", product.Stock)
	}
}

func TestProductStore_ApplyDeltas_RepeatedProductCannotGoNegative(t *testing.T) {
	store := memory.NewProductStore()
	seedProducts(t, store)
	ctx := context.Background()

	// Каждая дельта по отдельности проходит по исходному остатку 5,
	// но суммарно 3+3 превышает его: пакет должен отклониться целиком.
	err := store.ApplyDeltas(ctx, []domain.StockDelta{
		{ProductID: "product-1", Delta: -3},
		{ProductID: "product-1", Delta: -3},
	})

	var insufficient *domain.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if insufficient.ProductID != "product-1" || insufficient.Requested != 3 || insufficient.Available != 2 {
		t.Fatalf("unexpected error payload: %+v", insufficient)
	}

	product, _ := store.Get(ctx, "product-1")
	if product.Stock != 5 {
		t.Fatalf("stock changed despite rejected batch: %d", product.Stock)
	}
}

func TestProductStore_ApplyDeltas_UnknownProduct(t *testing.T) {
	store := memory.NewProductStore()
	seedProducts(t, store)

	err := store.ApplyDeltas(context.Background(), []domain.StockDelta{
		{ProductID: "missing", Delta: -1},
	})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductStore_ApplyDeltas_Restore(t *testing.T) {
	store := memory.NewProductStore()
	seedProducts(t, store)
	ctx := context.Background()

	if err := store.ApplyDeltas(ctx, []domain.StockDelta{{ProductID: "product-1", Delta: -5}}); err != nil {
		t.Fatalf("consume failed: %v", err)
	}
	if err := store.ApplyDeltas(ctx, []domain.StockDelta{{ProductID: "product-1", Delta: 5}}); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	product, _ := store.Get(ctx, "product-1")
	if product.Stock != 5 {
		t.Fatalf("expected stock restored to 5, got %d", product.Stock)
	}
}
