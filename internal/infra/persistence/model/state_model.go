// Package model defines the GORM persistence models mirroring the database tables.
package model

// StateModel mirrors the 'states' table: the seven UAE emirates, seeded at
// startup with fixed IDs.
type StateModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);unique;not null"`
	Code string `gorm:"type:varchar(10);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (StateModel) TableName() string {
	return "states"
}
