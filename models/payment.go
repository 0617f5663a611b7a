package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentInformation struct {
	ID uint `gorm:"primaryKey;column:payment_id" json:"payment_id"`
	ScopedBase
	PaymentType     string  `gorm:"type:varchar(20);not null" json:"payment_type" validate:"required,oneof=local foreign"`
	BeneficiaryName string  `gorm:"type:varchar(255);not null" json:"beneficiary_name" validate:"required,max=255"`
	BankName        string  `gorm:"type:varchar(255);not null" json:"bank_name" validate:"required,max=255"`
	AccountNumber   string  `gorm:"type:varchar(50);not null" json:"account_number" validate:"required,max=50"`
	SwiftCode       *string `gorm:"type:varchar(20)" json:"swift_code" validate:"omitempty,max=20"`
	BranchCode      *string `gorm:"type:varchar(20)" json:"branch_code" validate:"omitempty,max=20"`
	BranchName      *string `gorm:"type:varchar(255)" json:"branch_name"`
	BankAddress     *string `gorm:"type:text" json:"bank_address"`
	Currency        string  `gorm:"type:varchar(10);not null" json:"currency" validate:"required,max=10"`
	AdditionalInfo  *string `gorm:"type:text" json:"additional_info"`
}

func (PaymentInformation) TableName() string { return "payment_information" }
func (m *PaymentInformation) GetID() uint    { return m.ID }
func (m *PaymentInformation) SetID(id uint)  { m.ID = id }

type RegistrationFee struct {
	ID uint `gorm:"primaryKey;column:fee_id" json:"fee_id"`
	ScopedBase
	AttendeeType      string              `gorm:"type:varchar(100);not null;index" json:"attendee_type" validate:"required,max=100"`
	Currency          string              `gorm:"type:varchar(10);not null" json:"currency" validate:"required,max=10"`
	Amount            decimal.Decimal     `gorm:"type:numeric(10,2);not null" json:"amount"`
	EarlyBirdAmount   decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"early_bird_amount"`
	EarlyBirdDeadline *time.Time          `gorm:"type:date" json:"early_bird_deadline"`
	IsActive          bool                `gorm:"not null" json:"is_active"`
}

func (RegistrationFee) TableName() string { return "registration_fees" }
func (m *RegistrationFee) GetID() uint    { return m.ID }
func (m *RegistrationFee) SetID(id uint)  { m.ID = id }
func (m *RegistrationFee) ApplyDefaults() { m.IsActive = true }

type PolicyType string

const (
	PolicyTypeRequirement PolicyType = "requirement"
	PolicyTypeRestriction PolicyType = "restriction"
	PolicyTypeNote        PolicyType = "note"
)

type PaymentPolicy struct {
	ID uint `gorm:"primaryKey;column:policy_id" json:"policy_id"`
	ScopedBase
	PolicyText    string     `gorm:"type:text;not null" json:"policy_text" validate:"required"`
	PolicyType    PolicyType `gorm:"type:varchar(20);not null;default:'note';index" json:"policy_type" validate:"required,oneof=requirement restriction note"`
	IsHighlighted bool       `gorm:"not null;default:false" json:"is_highlighted"`
	IsActive      bool       `gorm:"not null" json:"is_active"`
}

func (PaymentPolicy) TableName() string { return "payment_policies" }
func (m *PaymentPolicy) GetID() uint    { return m.ID }
func (m *PaymentPolicy) SetID(id uint)  { m.ID = id }
func (m *PaymentPolicy) ApplyDefaults() {
	m.IsActive = true
	m.PolicyType = PolicyTypeNote
}
