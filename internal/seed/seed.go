// Package seed populates the pet store with generated records for
// development and walkthrough use.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/adoptly/shelter/internal/store"
)

// speciesCatalog is the practically small set of species the generator
// draws from.
var speciesCatalog = []string{
	"Dog", "Cat", "Hamster", "Rabbit", "Parrot", "Turtle", "Goldfish", "Ferret",
}

// petNames are human-style names for generated pets.
var petNames = []string{
	"Robin", "Gwendolyn", "Jennifer", "Sarah", "Alex", "Yuki", "Priya",
	"Amara", "Diego", "Layla", "Kofi", "Morgan", "Mei", "Ravi", "Sofia",
	"Kenji", "Zara", "Jordan", "Aisha", "Marcus", "Elena", "Tariq", "Nia",
	"Chris", "Luna", "Omar", "Maya", "Sam", "Kai", "Jasmine", "Andre",
	"Isla", "Leo",
}

// NewSeededRNG creates a seeded random number generator.
// If seed is 0, uses current time and prints the seed for reproducibility.
func NewSeededRNG(seed int64, verbose bool) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
		if verbose {
			fmt.Fprintf(os.Stderr, "Using seed: %d\n", seed)
		}
	}
	return rand.New(rand.NewSource(seed))
}

// Summary reports the outcome of a seeding run.
type Summary struct {
	Inserted int `json:"inserted"`
	Deleted  int `json:"deleted,omitempty"`
}

// Seeder writes generated pets through a store handle.
type Seeder struct {
	store store.Store
	rng   *rand.Rand
}

// New creates a Seeder writing through the given store.
func New(st store.Store, rng *rand.Rand) *Seeder {
	return &Seeder{store: st, rng: rng}
}

// Run inserts count generated pets. When fresh is set the table is wiped
// first so the store holds exactly the generated records.
func (s *Seeder) Run(ctx context.Context, count int, fresh bool) (Summary, error) {
	var summary Summary

	if fresh {
		deleted, err := s.store.DeleteAllPets(ctx)
		if err != nil {
			return summary, fmt.Errorf("wipe pets: %w", err)
		}
		summary.Deleted = int(deleted)
	}

	for i := 0; i < count; i++ {
		params := s.randomPet()
		if _, err := s.store.CreatePet(ctx, params); err != nil {
			return summary, fmt.Errorf("insert pet %d: %w", i+1, err)
		}
		summary.Inserted++
	}

	return summary, nil
}

func (s *Seeder) randomPet() store.CreatePetParams {
	return store.CreatePetParams{
		Name:    petNames[s.rng.Intn(len(petNames))],
		Species: speciesCatalog[s.rng.Intn(len(speciesCatalog))],
	}
}
