package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/salesops/internal/domain"
)

func sampleCustomer(id, email, salesmanID string) domain.Customer {
	return domain.Customer{
		ID:         id,
		Name:       "Petrov",
		Firstname:  "Petr",
		Company:    "Acme",
		Email:      email,
		Phone:      "+7-900-000-00-00",
		SalesmanID: salesmanID,
		CreatedAt:  time.Now().UTC().Round(time.Microsecond),
	}
}

func TestCustomerRepository_PostgresFlow(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewCustomerRepository(store)
	ctx := context.Background()

	first := sampleCustomer("customer-1", "petr@example.com", "user-1")
	second := sampleCustomer("customer-2", "anna@example.com", "user-2")

	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create first customer: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("create second customer: %v", err)
	}

	duplicate := sampleCustomer("customer-3", "PETR@example.com", "user-1")
	if err := repo.Create(ctx, duplicate); !errors.Is(err, domain.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list customers: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(all))
	}

	owned, err := repo.ListBySalesman(ctx, "user-1")
	if err != nil {
		t.Fatalf("list by salesman: %v", err)
	}
	if len(owned) != 1 || owned[0].ID != first.ID {
		t.Fatalf("unexpected owned customers: %+v", owned)
	}

	// Save не меняет владельца даже при подмене поля.
	updated := first
	updated.Company = "Globex"
	updated.SalesmanID = "user-999"
	if err := repo.Save(ctx, updated); err != nil {
		t.Fatalf("save customer: %v", err)
	}
	got, err := repo.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if got.Company != "Globex" {
		t.Fatalf("expected updated company, got %s", got.Company)
	}
	if got.SalesmanID != "user-1" {
		t.Fatalf("salesman must be immutable, got %s", got.SalesmanID)
	}

	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete customer: %v", err)
	}
	if _, err := repo.Get(ctx, first.ID); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, first.ID); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound on double delete, got %v", err)
	}
}
