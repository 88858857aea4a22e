package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/adoptly/shelter/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "seed.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestRunInsertsCount(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	seeder := New(st, NewSeededRNG(42, false))
	summary, err := seeder.Run(ctx, 10, false)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Inserted != 10 {
		t.Errorf("expected 10 inserted, got %d", summary.Inserted)
	}

	pets, err := st.ListPets(ctx, store.ListPetsParams{})
	if err != nil {
		t.Fatalf("list pets: %v", err)
	}
	if len(pets) != 10 {
		t.Errorf("expected 10 pets in store, got %d", len(pets))
	}
}

func TestRunIsDeterministicForSeed(t *testing.T) {
	ctx := context.Background()

	generate := func(t *testing.T) []string {
		t.Helper()
		st := newTestStore(t)
		seeder := New(st, NewSeededRNG(7, false))
		if _, err := seeder.Run(ctx, 20, false); err != nil {
			t.Fatalf("run: %v", err)
		}
		pets, err := st.ListPets(ctx, store.ListPetsParams{})
		if err != nil {
			t.Fatalf("list pets: %v", err)
		}
		var keys []string
		for _, p := range pets {
			keys = append(keys, p.Name+"/"+p.Species)
		}
		return keys
	}

	first := generate(t)
	second := generate(t)

	if len(first) != len(second) {
		t.Fatalf("expected equal lengths, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("pet %d differs: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestRunDrawsFromCatalog(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	seeder := New(st, NewSeededRNG(3, false))
	if _, err := seeder.Run(ctx, 50, false); err != nil {
		t.Fatalf("run: %v", err)
	}

	known := make(map[string]bool, len(speciesCatalog))
	for _, sp := range speciesCatalog {
		known[sp] = true
	}

	pets, _ := st.ListPets(ctx, store.ListPetsParams{})
	for _, p := range pets {
		if !known[p.Species] {
			t.Errorf("pet %q has species %q outside the catalog", p.Name, p.Species)
		}
	}
}

func TestRunFreshWipesExisting(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	st.CreatePet(ctx, store.CreatePetParams{Name: "Stale", Species: "Dog"})
	st.CreatePet(ctx, store.CreatePetParams{Name: "Staler", Species: "Cat"})

	seeder := New(st, NewSeededRNG(9, false))
	summary, err := seeder.Run(ctx, 5, true)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Deleted != 2 {
		t.Errorf("expected 2 deleted, got %d", summary.Deleted)
	}

	pets, _ := st.ListPets(ctx, store.ListPetsParams{})
	if len(pets) != 5 {
		t.Errorf("expected exactly 5 pets after fresh run, got %d", len(pets))
	}
}
