package models

type SpeakerType string

const (
	SpeakerTypeKeynote SpeakerType = "keynote"
	SpeakerTypePlenary SpeakerType = "plenary"
	SpeakerTypeInvited SpeakerType = "invited"
)

type Speaker struct {
	ID uint `gorm:"primaryKey" json:"id"`
	ScopedBase
	SpeakerType           SpeakerType `gorm:"type:varchar(20);not null;index" json:"speaker_type" validate:"required,oneof=keynote plenary invited"`
	FullName              string      `gorm:"type:varchar(255);not null" json:"full_name" validate:"required,max=255"`
	Title                 *string     `gorm:"type:varchar(255)" json:"title"`
	Affiliation           string      `gorm:"type:varchar(255);not null" json:"affiliation" validate:"required,max=255"`
	AdditionalAffiliation *string     `gorm:"type:varchar(255)" json:"additional_affiliation"`
	Bio                   *string     `gorm:"type:text" json:"bio"`
	PhotoFilename         *string     `gorm:"type:varchar(255)" json:"photo_filename"`
	WebsiteURL            *string     `gorm:"type:varchar(255)" json:"website_url" validate:"omitempty,url"`
	Email                 *string     `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
}

func (Speaker) TableName() string { return "speakers" }
func (m *Speaker) GetID() uint    { return m.ID }
func (m *Speaker) SetID(id uint)  { m.ID = id }
