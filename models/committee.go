package models

import "time"

// CommitteeType is a global lookup shared by all editions.
type CommitteeType struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CommitteeName string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"committee_name"`
	DisplayOrder  int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CommitteeMember struct {
	ID uint `gorm:"primaryKey" json:"id"`
	ScopedBase
	CommitteeTypeID uint           `gorm:"not null;index" json:"committee_type_id" validate:"required"`
	CommitteeType   *CommitteeType `gorm:"foreignKey:CommitteeTypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"committee_type,omitempty" validate:"-"`
	FullName        string         `gorm:"type:varchar(255);not null" json:"full_name" validate:"required,max=255"`
	Designation     string         `gorm:"type:varchar(255);not null" json:"designation" validate:"required,max=255"`
	Department      *string        `gorm:"type:varchar(255)" json:"department"`
	Affiliation     string         `gorm:"type:varchar(255);not null" json:"affiliation" validate:"required,max=255"`
	Role            string         `gorm:"type:varchar(255);not null" json:"role" validate:"required,max=255"`
	RoleCategory    *string        `gorm:"type:varchar(255)" json:"role_category"`
	Country         *string        `gorm:"type:varchar(255)" json:"country"`
	IsInternational bool           `gorm:"not null;default:false" json:"is_international"`
}

func (CommitteeMember) TableName() string { return "committee_members" }
func (m *CommitteeMember) GetID() uint    { return m.ID }
func (m *CommitteeMember) SetID(id uint)  { m.ID = id }
