package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string         `json:"db_path"`
	DBSizeBytes int64          `json:"db_size_bytes"`
	TotalPets   int            `json:"total_pets"`
	Species     []SpeciesCount `json:"species"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pets`).Scan(&st.TotalPets)

	counts, err := s.SpeciesCounts(ctx)
	if err != nil {
		return st, err
	}
	st.Species = counts

	return st, nil
}
