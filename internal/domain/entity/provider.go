package entity

import (
	"time"

	"github.com/google/uuid"
)

// Provider is an insurance company, identified by exact name. Providers are
// created lazily the first time an ingested document names a new company and
// are never deleted, only reused. Name matching is case-sensitive: two
// spellings of the same company become two distinct rows.
type Provider struct {
	ID          uuid.UUID
	Name        string // Unique company name, exact-match identity.
	LogoURL     string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
