package model

import (
	"time"

	"github.com/google/uuid"
)

// PlanModel mirrors the 'plans' table. The three document-shaped attributes
// (features, age_based_pricing, structured_features) are stored as JSON text
// columns; the repository layer marshals them, keeping GORM unaware of their
// shape.
type PlanModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null;index"`
	StateID    uint      `gorm:"not null;index"`

	PlanName     string `gorm:"type:varchar(255);not null"`
	PlanType     string `gorm:"type:varchar(50);not null;index"`
	MonthlyCost  *float64
	AnnualCost   *float64
	Deductible   *float64
	MaxCoverage  *float64
	CoverageType *string `gorm:"type:varchar(100)"`

	Features            string `gorm:"type:jsonb;default:'[]'"`
	EligibilityCriteria *string
	Exclusions          *string
	BenefitsTable       *string
	AgeBasedPricing     string `gorm:"type:jsonb;default:'[]'"`
	StructuredFeatures  string `gorm:"type:jsonb;default:'{}'"`

	DocumentSource string `gorm:"type:varchar(512)"`
	IsActive       bool   `gorm:"not null;default:true;index"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Provider *ProviderModel `gorm:"foreignKey:ProviderID"`
	State    *StateModel    `gorm:"foreignKey:StateID"`
}

// TableName explicitly sets the table name for GORM.
func (PlanModel) TableName() string {
	return "plans"
}
