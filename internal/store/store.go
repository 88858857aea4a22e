// Package store provides the pet storage interface and SQLite implementation.
package store

import (
	"context"
	"errors"

	"github.com/adoptly/shelter/internal/model"
)

// ErrNotFound indicates a requested pet record is missing.
var ErrNotFound = errors.New("pet not found")

// CreatePetParams holds parameters for inserting a pet.
type CreatePetParams struct {
	Name    string
	Species string
}

// ListPetsParams holds parameters for listing pets.
type ListPetsParams struct {
	// Species filters by exact, case-sensitive equality when non-empty.
	Species string
}

// SpeciesCount holds the number of pets for one species.
type SpeciesCount struct {
	Species string `json:"species"`
	Count   int    `json:"count"`
}

// Store defines the pet storage interface.
type Store interface {
	// CreatePet inserts a pet and returns it with the store-assigned id.
	CreatePet(ctx context.Context, p CreatePetParams) (model.Pet, error)

	// GetPet retrieves a pet by id. Returns ErrNotFound when no row matches.
	GetPet(ctx context.Context, id int64) (model.Pet, error)

	// ListPets lists pets matching the given filters, ordered by id ascending.
	ListPets(ctx context.Context, p ListPetsParams) ([]model.Pet, error)

	// SpeciesCounts returns per-species pet counts, largest first.
	SpeciesCounts(ctx context.Context) ([]SpeciesCount, error)

	// DeleteAllPets removes every pet and reports how many rows were deleted.
	DeleteAllPets(ctx context.Context) (int64, error)

	// Close closes the store.
	Close() error
}
