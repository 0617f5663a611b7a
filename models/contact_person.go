package models

type ContactPerson struct {
	ID uint `gorm:"primaryKey" json:"id"`
	ScopedBase
	FullName   string  `gorm:"type:varchar(255);not null" json:"full_name" validate:"required,max=255"`
	Role       string  `gorm:"type:varchar(255);not null" json:"role" validate:"required,max=255"`
	Department *string `gorm:"type:varchar(255)" json:"department"`
	Mobile     *string `gorm:"type:varchar(50)" json:"mobile" validate:"omitempty,max=50"`
	Phone      *string `gorm:"type:varchar(50)" json:"phone" validate:"omitempty,max=50"`
	Email      *string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Address    *string `gorm:"type:text" json:"address"`
}

func (ContactPerson) TableName() string { return "contact_persons" }
func (m *ContactPerson) GetID() uint    { return m.ID }
func (m *ContactPerson) SetID(id uint)  { m.ID = id }
