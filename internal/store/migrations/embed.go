package migrations

import "embed"

// FS contains embedded SQLite migrations for pet storage.
//
//go:embed *.sql
var FS embed.FS
