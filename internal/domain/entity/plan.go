package entity

import (
	"time"

	"github.com/google/uuid"
)

// Plan is a single insurance offering tied to one provider and one state.
// The set of active plans for a (provider, state) pair is always the output
// of the most recent ingestion: ingestion replaces, never merges.
//
// Numeric attributes are pointers because the extractor reports "not stated
// in the document" as null, which is distinct from zero.
type Plan struct {
	ID         uuid.UUID
	ProviderID uuid.UUID
	StateID    uint
	Provider   *Provider // Populated on reads that join the provider.
	State      *State    // Populated on reads that join the state.

	Name         string
	Type         PlanType
	MonthlyCost  *float64
	AnnualCost   *float64
	Deductible   *float64
	MaxCoverage  *float64
	CoverageType *string // e.g. "Individual", "Family".

	Features            []string
	EligibilityCriteria *string
	Exclusions          *string
	BenefitsTable       *string // Free-form rendering of the document's benefits table.

	AgeBandPricing     []AgeBandPrice      // Ordered as extracted from the document.
	StructuredFeatures *StructuredFeatures // Fixed-shape comparison attributes.

	DocumentSource string // Comma-joined original filenames of the ingested documents.
	IsActive       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AgeBandPrice is one row of an age-based pricing table: the annual premium
// for an age range. Order within a plan is significant and preserved.
type AgeBandPrice struct {
	AgeRange string  `json:"age_range"`
	Premium  float64 `json:"premium"`
}
