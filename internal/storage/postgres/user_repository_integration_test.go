package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/salesops/internal/domain"
)

func TestUserRepository_PostgresCreateAndLookups(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewUserRepository(store)
	ctx := context.Background()

	user := domain.User{
		ID:           "user-1",
		Name:         "Ivanov",
		Firstname:    "Ivan",
		Email:        "ivan@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC().Round(time.Microsecond),
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	got, err := repo.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.Email != user.Email || got.PasswordHash != user.PasswordHash {
		t.Fatalf("unexpected user payload: %+v", got)
	}

	// Поиск по email без учёта регистра.
	byEmail, err := repo.GetByEmail(ctx, "IVAN@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Fatalf("unexpected user by email: %+v", byEmail)
	}

	duplicate := user
	duplicate.ID = "user-2"
	duplicate.Email = "Ivan@Example.com"
	if err := repo.Create(ctx, duplicate); !errors.Is(err, domain.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}

	if _, err := repo.Get(ctx, "missing-user"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound by email, got %v", err)
	}
}
