// Package model defines the core shelter data types.
package model

import "time"

// Pet represents an adoptable pet record.
type Pet struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	CreatedAt time.Time `json:"created_at"`
}
