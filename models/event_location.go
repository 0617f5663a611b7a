package models

import "github.com/shopspring/decimal"

// EventLocation is the venue of an edition. There is at most one per edition.
type EventLocation struct {
	ID uint `gorm:"primaryKey;column:location_id" json:"location_id"`
	ScopedBase
	VenueName          string              `gorm:"type:varchar(255);not null" json:"venue_name" validate:"required,max=255"`
	FullAddress        string              `gorm:"type:text;not null" json:"full_address" validate:"required"`
	City               string              `gorm:"type:varchar(100);not null" json:"city" validate:"required,max=100"`
	Country            string              `gorm:"type:varchar(100);not null" json:"country" validate:"required,max=100"`
	Latitude           decimal.NullDecimal `gorm:"type:numeric(10,8)" json:"latitude"`
	Longitude          decimal.NullDecimal `gorm:"type:numeric(11,8)" json:"longitude"`
	GoogleMapsEmbedURL *string             `gorm:"type:text" json:"google_maps_embed_url"`
	GoogleMapsLink     *string             `gorm:"type:text" json:"google_maps_link" validate:"omitempty,url"`
	IsVirtual          bool                `gorm:"not null;default:false" json:"is_virtual"`
}

func (EventLocation) TableName() string { return "event_locations" }
func (m *EventLocation) GetID() uint    { return m.ID }
func (m *EventLocation) SetID(id uint)  { m.ID = id }
