package model

import "time"

// Metadata carries the record stamps shared by stored entities.
type Metadata struct {
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by,omitempty"`
}
