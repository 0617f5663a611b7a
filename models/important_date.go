package models

import (
	"time"

	"gorm.io/gorm"
)

type DateType string

const (
	DateTypeSubmissionDeadline   DateType = "submission_deadline"
	DateTypeNotification         DateType = "notification"
	DateTypeCameraReady          DateType = "camera_ready"
	DateTypeConferenceDate       DateType = "conference_date"
	DateTypeRegistrationDeadline DateType = "registration_deadline"
	DateTypeOther                DateType = "other"
)

type ImportantDate struct {
	ID uint `gorm:"primaryKey" json:"id"`
	ScopedBase
	DateType     DateType   `gorm:"type:varchar(40);not null" json:"date_type" validate:"required,oneof=submission_deadline notification camera_ready conference_date registration_deadline other"`
	DateValue    time.Time  `gorm:"type:date;not null" json:"date_value" validate:"required"`
	IsExtended   bool       `gorm:"not null;default:false" json:"is_extended"`
	OriginalDate *time.Time `gorm:"type:date" json:"original_date"`
	DisplayLabel *string    `gorm:"type:varchar(255)" json:"display_label" validate:"omitempty,max=255"`
	Notes        *string    `gorm:"type:text" json:"notes"`

	IsPassed      bool `gorm:"-" json:"is_passed"`
	DaysRemaining int  `gorm:"-" json:"days_remaining"`
}

func (ImportantDate) TableName() string { return "important_dates" }
func (m *ImportantDate) GetID() uint    { return m.ID }
func (m *ImportantDate) SetID(id uint)  { m.ID = id }

// AfterFind fills the derived timeline fields on every load.
func (m *ImportantDate) AfterFind(tx *gorm.DB) error {
	m.ApplyTimeline(time.Now())
	return nil
}

// ApplyTimeline computes is_passed and days_remaining against the start of now's UTC day.
// days_remaining is negative once the date has passed.
func (m *ImportantDate) ApplyTimeline(now time.Time) {
	today := StartOfDayUTC(now)
	day := StartOfDayUTC(m.DateValue)
	m.IsPassed = day.Before(today)
	m.DaysRemaining = int(day.Sub(today).Hours() / 24)
}

// Extend moves the date, keeping the first pre-extension value in OriginalDate.
func (m *ImportantDate) Extend(newDate time.Time) {
	if m.OriginalDate == nil {
		original := m.DateValue
		m.OriginalDate = &original
	}
	m.IsExtended = true
	m.DateValue = newDate
}

func StartOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
