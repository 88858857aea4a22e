package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/adoptly/shelter/internal/model"
	"github.com/adoptly/shelter/internal/store/migrations"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates a SQLite database at the given path
// and applies embedded migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := applyMigrations(db, migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) CreatePet(ctx context.Context, p CreatePetParams) (model.Pet, error) {
	now := time.Now().UTC()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO pets (name, species, created_at) VALUES (?, ?, ?)`,
		p.Name, p.Species, now.Format(time.RFC3339))
	if err != nil {
		return model.Pet{}, fmt.Errorf("insert pet: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Pet{}, fmt.Errorf("pet insert id: %w", err)
	}

	return model.Pet{
		ID:        id,
		Name:      p.Name,
		Species:   p.Species,
		CreatedAt: now,
	}, nil
}

func (s *SQLiteStore) GetPet(ctx context.Context, id int64) (model.Pet, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, species, created_at FROM pets WHERE id = ? LIMIT 1`, id)

	pet, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Pet{}, ErrNotFound
		}
		return model.Pet{}, fmt.Errorf("get pet %d: %w", id, err)
	}
	return pet, nil
}

func (s *SQLiteStore) ListPets(ctx context.Context, p ListPetsParams) ([]model.Pet, error) {
	query := `SELECT id, name, species, created_at FROM pets ORDER BY id`
	args := []interface{}{}
	if p.Species != "" {
		query = `SELECT id, name, species, created_at FROM pets WHERE species = ? ORDER BY id`
		args = append(args, p.Species)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer rows.Close()

	var pets []model.Pet
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pet: %w", err)
		}
		pets = append(pets, pet)
	}

	return pets, rows.Err()
}

func (s *SQLiteStore) SpeciesCounts(ctx context.Context) ([]SpeciesCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT species, COUNT(*) AS cnt FROM pets GROUP BY species ORDER BY cnt DESC, species`)
	if err != nil {
		return nil, fmt.Errorf("species counts: %w", err)
	}
	defer rows.Close()

	var counts []SpeciesCount
	for rows.Next() {
		var c SpeciesCount
		if err := rows.Scan(&c.Species, &c.Count); err != nil {
			return nil, fmt.Errorf("scan species count: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

func (s *SQLiteStore) DeleteAllPets(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM pets`)
	if err != nil {
		return 0, fmt.Errorf("delete pets: %w", err)
	}
	return res.RowsAffected()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPet(row scanner) (model.Pet, error) {
	var pet model.Pet
	var createdAt string

	if err := row.Scan(&pet.ID, &pet.Name, &pet.Species, &createdAt); err != nil {
		return pet, err
	}

	pet.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return pet, nil
}
