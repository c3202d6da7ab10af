package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestInsufficientStockError(t *testing.T) {
	err := &InsufficientStockError{ProductID: "product-1", Requested: 3, Available: 2}

	if !IsInsufficientStock(err) {
		t.Fatal("expected IsInsufficientStock to match")
	}
	if IsInsufficientStock(ErrOrderNotFound) {
		t.Fatal("IsInsufficientStock must not match unrelated errors")
	}

	wrapped := fmt.Errorf("apply deltas: %w", err)
	if !IsInsufficientStock(wrapped) {
		t.Fatal("expected IsInsufficientStock to match wrapped error")
	}

	var target *InsufficientStockError
	if !errors.As(wrapped, &target) {
		t.Fatal("errors.As must unwrap InsufficientStockError")
	}
	if target.Requested != 3 || target.Available != 2 {
		t.Fatalf("unexpected error payload: %+v", target)
	}
}

func TestIsNotFound(t *testing.T) {
	for _, err := range []error{ErrUserNotFound, ErrCustomerNotFound, ErrProductNotFound, ErrOrderNotFound} {
		if !IsNotFound(err) {
			t.Fatalf("expected IsNotFound for %v", err)
		}
		if !IsNotFound(fmt.Errorf("load: %w", err)) {
			t.Fatalf("expected IsNotFound for wrapped %v", err)
		}
	}
	if IsNotFound(ErrPermissionDenied) {
		t.Fatal("IsNotFound must not match permission errors")
	}
}
