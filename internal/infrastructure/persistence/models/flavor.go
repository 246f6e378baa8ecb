package models

import (
	"time"

	"github.com/jellybean/emporium/internal/domain/catalog"
)

// FlavorModel is the persistence model for jellybean flavors
type FlavorModel struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Flavor    string    `gorm:"column:flavor;not null"`
	ImageKey  string    `gorm:"column:image_key;not null"`
	DateAdded time.Time `gorm:"column:date_added;not null"`
}

// TableName specifies the table name for FlavorModel
func (FlavorModel) TableName() string {
	return "jellybean_flavors"
}

// ToDomain converts the persistence model to a domain flavor
func (m *FlavorModel) ToDomain() *catalog.Flavor {
	return &catalog.Flavor{
		ID:        m.ID,
		Name:      m.Flavor,
		ImageKey:  m.ImageKey,
		DateAdded: m.DateAdded,
	}
}

// FromDomain populates the persistence model from a domain flavor
func (m *FlavorModel) FromDomain(f *catalog.Flavor) {
	m.ID = f.ID
	m.Flavor = f.Name
	m.ImageKey = f.ImageKey
	m.DateAdded = f.DateAdded
}
