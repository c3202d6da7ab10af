package postgres

import (
	"context"
	"testing"
	"time"
)

func assertMigrationStatus(t *testing.T, ctx context.Context, store *Store, stage string, wantVersion int64, wantCount int) {
	t.Helper()

	version, count, err := store.MigrationStatus(ctx)
	if err != nil {
		t.Fatalf("migration status %s: %v", stage, err)
	}
	if version != wantVersion || count != wantCount {
		t.Fatalf("unexpected status %s: version=%d count=%d", stage, version, count)
	}
}

func TestMigrator_PostgresLifecycle(t *testing.T) {
	store := openRawPostgresStoreForIntegrationTest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	// Сбрасываем состояние перед прогоном.
	if err := store.MigrateDown(ctx, 100); err != nil {
		t.Fatalf("migrate down reset: %v", err)
	}
	assertMigrationStatus(t, ctx, store, "after reset", 0, 0)

	if err := store.MigrateUp(ctx, 0); err != nil {
		t.Fatalf("migrate up all: %v", err)
	}
	assertMigrationStatus(t, ctx, store, "after up all", 5, 5)

	// Повторный up ничего не меняет.
	if err := store.MigrateUp(ctx, 0); err != nil {
		t.Fatalf("idempotent migrate up: %v", err)
	}
	assertMigrationStatus(t, ctx, store, "after idempotent up", 5, 5)

	if err := store.MigrateDown(ctx, 1); err != nil {
		t.Fatalf("migrate down 1: %v", err)
	}
	assertMigrationStatus(t, ctx, store, "after down 1", 4, 4)

	// steps<=0 для down означает один шаг, откатываем остаток по одному.
	for wantVersion := int64(3); wantVersion >= 0; wantVersion-- {
		if err := store.MigrateDown(ctx, 0); err != nil {
			t.Fatalf("migrate down default step: %v", err)
		}
		assertMigrationStatus(t, ctx, store, "after down default", wantVersion, int(wantVersion))
	}

	// Down на пустом состоянии — no-op.
	if err := store.MigrateDown(ctx, 1); err != nil {
		t.Fatalf("migrate down on empty should be no-op: %v", err)
	}
}

func TestMigrator_GuardsAndUnsupportedDirection(t *testing.T) {
	var nilStore *Store
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := nilStore.MigrateUp(ctx, 0); err == nil {
		t.Fatal("expected error for nil store MigrateUp")
	}
	if err := nilStore.MigrateDown(ctx, 1); err == nil {
		t.Fatal("expected error for nil store MigrateDown")
	}
	if _, _, err := nilStore.MigrationStatus(ctx); err == nil {
		t.Fatal("expected error for nil store MigrationStatus")
	}

	store := openRawPostgresStoreForIntegrationTest(t)
	if err := store.migrate(ctx, migrationDirection("invalid"), 0); err == nil {
		t.Fatal("expected unsupported direction error")
	}
}
