package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/pressly/goose/v3"
)

func TestRunMigrations_PropagatesGooseError(t *testing.T) {
	old := gooseUpContext
	defer func() { gooseUpContext = old }()

	want := errors.New("migration boom")
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return want
	}

	m := NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), nil); !errors.Is(err, want) {
		t.Fatalf("want goose error, got %v", err)
	}
}

func TestRunMigrations_Success(t *testing.T) {
	old := gooseUpContext
	defer func() { gooseUpContext = old }()

	called := false
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		called = true
		return nil
	}

	m := NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("goose was not invoked")
	}
}

func TestInMemoryManager_VendsStableRepositories(t *testing.T) {
	m := NewInMemoryRepositoryManager()

	if m.Users(nil) != m.Users(nil) {
		t.Fatal("users repository must be the same instance across calls")
	}
	if m.Products(nil) != m.Products(nil) {
		t.Fatal("products repository must be the same instance across calls")
	}
	if err := m.RunMigrations(context.Background(), nil); err != nil {
		t.Fatalf("in-memory migrations must be a no-op, got %v", err)
	}
}
