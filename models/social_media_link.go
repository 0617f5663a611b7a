package models

type SocialMediaLink struct {
	ID uint `gorm:"primaryKey" json:"id"`
	ScopedBase
	Platform string `gorm:"type:varchar(20);not null" json:"platform" validate:"required,oneof=facebook twitter linkedin instagram youtube email"`
	URL      string `gorm:"type:varchar(255);not null" json:"url" validate:"required,max=255"`
	Label    string `gorm:"type:varchar(255);not null;default:''" json:"label"`
	IsActive bool   `gorm:"not null;index" json:"is_active"`
}

func (SocialMediaLink) TableName() string { return "social_media_links" }
func (m *SocialMediaLink) GetID() uint    { return m.ID }
func (m *SocialMediaLink) SetID(id uint)  { m.ID = id }
func (m *SocialMediaLink) ApplyDefaults() { m.IsActive = true }
