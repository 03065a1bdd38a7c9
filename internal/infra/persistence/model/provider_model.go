package model

import (
	"time"

	"github.com/google/uuid"
)

// ProviderModel mirrors the 'providers' table. Names are unique and matched
// case-sensitively; ingestion relies on that to find or create the provider
// a document batch belongs to.
type ProviderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);unique;not null"`
	LogoURL     string    `gorm:"type:varchar(512)"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProviderModel) TableName() string {
	return "providers"
}
