package models

import (
	"time"

	"gorm.io/gorm"
)

// LegacyStatusCancelled is the only legacy conference status the backfill carries over verbatim.
const LegacyStatusCancelled = "cancelled"

// Conference is the pre-edition root table. It is only read by the backfill.
type Conference struct {
	ID                uint      `gorm:"primaryKey"`
	Year              int       `gorm:"not null;index"`
	EditionNumber     int       `gorm:"not null"`
	ConferenceDate    time.Time `gorm:"type:date;not null"`
	VenueType         string    `gorm:"type:varchar(20);not null;default:'physical'"`
	VenueLocation     *string   `gorm:"type:varchar(255)"`
	Theme             string    `gorm:"type:text;not null"`
	Description       *string   `gorm:"type:text"`
	Status            string    `gorm:"type:varchar(20)"`
	GeneralEmail      string    `gorm:"type:varchar(255);not null"`
	AvailabilityHours *string   `gorm:"type:varchar(255)"`
	CopyrightYear     int       `gorm:"not null"`
	SiteVersion       *string   `gorm:"type:varchar(20)"`
	LastUpdated       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

func (Conference) TableName() string { return "conferences" }
