package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel is embedded by top-level tables that support soft delete.
type BaseModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ScopedBase carries the columns every edition-scoped table shares.
// ConferenceID is the legacy single-conference key; it is read but never written.
type ScopedBase struct {
	EditionID    uint      `gorm:"not null;index" json:"edition_id"`
	ConferenceID *uint     `gorm:"column:conference_id;<-:false" json:"conference_id,omitempty"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order" validate:"gte=0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (s *ScopedBase) Scope() *ScopedBase { return s }

// Scoped is implemented by every model owned by exactly one edition.
type Scoped interface {
	Scope() *ScopedBase
	TableName() string
}

// Defaulter lets a model fill non-zero defaults before a request body is decoded onto it.
type Defaulter interface {
	ApplyDefaults()
}
