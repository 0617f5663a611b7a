package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ResearchCategory struct {
	ID uint `gorm:"primaryKey" json:"id"`
	ScopedBase
	CategoryCode string         `gorm:"type:varchar(20);not null" json:"category_code" validate:"required,max=20"`
	CategoryName string         `gorm:"type:varchar(255);not null" json:"category_name" validate:"required,max=255"`
	Description  *string        `gorm:"type:text" json:"description"`
	IsActive     bool           `gorm:"not null" json:"is_active"`
	Areas        []ResearchArea `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"research_areas,omitempty" validate:"-"`
}

func (ResearchCategory) TableName() string { return "research_categories" }
func (m *ResearchCategory) GetID() uint    { return m.ID }
func (m *ResearchCategory) SetID(id uint)  { m.ID = id }
func (m *ResearchCategory) ApplyDefaults() { m.IsActive = true }

// BeforeDelete removes the category's areas; not every driver enforces the FK cascade.
func (m *ResearchCategory) BeforeDelete(tx *gorm.DB) error {
	if m.ID == 0 {
		return nil
	}
	return tx.Where("category_id = ?", m.ID).Delete(&ResearchArea{}).Error
}

// ResearchArea belongs to a category and reaches its edition only through it.
type ResearchArea struct {
	ID             uint                        `gorm:"primaryKey" json:"id"`
	CategoryID     uint                        `gorm:"not null;index" json:"category_id"`
	AreaName       string                      `gorm:"type:varchar(255);not null" json:"area_name" validate:"required,max=255"`
	AlternateNames datatypes.JSONSlice[string] `json:"alternate_names"`
	DisplayOrder   int                         `gorm:"not null;default:0" json:"display_order" validate:"gte=0"`
	IsActive       bool                        `gorm:"not null" json:"is_active"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

func (ResearchArea) TableName() string { return "research_areas" }
func (m *ResearchArea) ApplyDefaults() { m.IsActive = true }
