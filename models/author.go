package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type SubmissionMethod struct {
	ID uint `gorm:"primaryKey" json:"id"`
	ScopedBase
	DocumentType     string  `gorm:"type:varchar(40);not null" json:"document_type" validate:"required,oneof=author_info abstract extended_abstract camera_ready other"`
	SubmissionMethod string  `gorm:"type:varchar(40);not null" json:"submission_method" validate:"required,oneof=email cmt_upload online_form postal"`
	EmailAddress     *string `gorm:"type:varchar(255)" json:"email_address" validate:"omitempty,email"`
	Notes            *string `gorm:"type:text" json:"notes"`
}

func (SubmissionMethod) TableName() string { return "submission_methods" }
func (m *SubmissionMethod) GetID() uint    { return m.ID }
func (m *SubmissionMethod) SetID(id uint)  { m.ID = id }

type PresentationGuideline struct {
	ID uint `gorm:"primaryKey" json:"id"`
	ScopedBase
	PresentationType         string              `gorm:"type:varchar(20);not null" json:"presentation_type" validate:"required,oneof=oral poster workshop panel"`
	DurationMinutes          *int                `json:"duration_minutes" validate:"omitempty,gt=0"`
	PresentationMinutes      *int                `json:"presentation_minutes" validate:"omitempty,gt=0"`
	QAMinutes                *int                `gorm:"column:qa_minutes" json:"qa_minutes" validate:"omitempty,gte=0"`
	PosterWidth              decimal.NullDecimal `gorm:"type:numeric(8,2)" json:"poster_width"`
	PosterHeight             decimal.NullDecimal `gorm:"type:numeric(8,2)" json:"poster_height"`
	PosterUnit               *string             `gorm:"type:varchar(10)" json:"poster_unit" validate:"omitempty,oneof=inches cm mm"`
	PosterOrientation        *string             `gorm:"type:varchar(20)" json:"poster_orientation" validate:"omitempty,oneof=portrait landscape"`
	PhysicalPresenceRequired bool                `gorm:"not null" json:"physical_presence_required"`
	DetailedRequirements     *string             `gorm:"type:text" json:"detailed_requirements"`
}

func (PresentationGuideline) TableName() string { return "presentation_guidelines" }
func (m *PresentationGuideline) GetID() uint    { return m.ID }
func (m *PresentationGuideline) SetID(id uint)  { m.ID = id }
func (m *PresentationGuideline) ApplyDefaults() { m.PhysicalPresenceRequired = true }

// AuthorPageConfig holds one edition's author-instruction settings.
type AuthorPageConfig struct {
	ID uint `gorm:"primaryKey" json:"id"`
	ScopedBase
	ConferenceFormat    string  `gorm:"type:varchar(20);not null" json:"conference_format" validate:"required,oneof=in_person virtual hybrid"`
	CMTURL              *string `gorm:"column:cmt_url;type:varchar(255)" json:"cmt_url" validate:"omitempty,url"`
	SubmissionEmail     *string `gorm:"type:varchar(255)" json:"submission_email" validate:"omitempty,email"`
	BlindReviewEnabled  bool    `gorm:"not null" json:"blind_review_enabled"`
	CameraReadyRequired bool    `gorm:"not null" json:"camera_ready_required"`
	SpecialInstructions *string `gorm:"type:text" json:"special_instructions"`
	AcknowledgmentText  *string `gorm:"type:text" json:"acknowledgment_text"`
}

func (AuthorPageConfig) TableName() string { return "author_page_config" }
func (m *AuthorPageConfig) GetID() uint    { return m.ID }
func (m *AuthorPageConfig) SetID(id uint)  { m.ID = id }
func (m *AuthorPageConfig) ApplyDefaults() {
	m.BlindReviewEnabled = true
	m.CameraReadyRequired = true
}

type AbstractFormat struct {
	ID uint `gorm:"primaryKey" json:"id"`
	ScopedBase
	FormatType         string              `gorm:"type:varchar(30);not null;index" json:"format_type" validate:"required,oneof=abstract extended_abstract"`
	MaxTitleCharacters *int                `json:"max_title_characters" validate:"omitempty,gt=0"`
	TitleFontName      *string             `gorm:"type:varchar(100)" json:"title_font_name"`
	TitleFontSize      *int                `json:"title_font_size"`
	TitleStyle         *string             `gorm:"type:varchar(100)" json:"title_style"`
	MaxBodyWords       *int                `json:"max_body_words" validate:"omitempty,gt=0"`
	BodyFontName       *string             `gorm:"type:varchar(100)" json:"body_font_name"`
	BodyFontSize       *int                `json:"body_font_size"`
	BodyLineSpacing    decimal.NullDecimal `gorm:"type:numeric(3,1)" json:"body_line_spacing"`
	MaxKeywords        *int                `json:"max_keywords" validate:"omitempty,gt=0"`
	KeywordsFontName   *string             `gorm:"type:varchar(100)" json:"keywords_font_name"`
	KeywordsFontSize   *int                `json:"keywords_font_size"`
	KeywordsStyle      *string             `gorm:"type:varchar(100)" json:"keywords_style"`
	MaxReferences      *int                `json:"max_references" validate:"omitempty,gte=0"`
	Sections           datatypes.JSON      `json:"sections"`
	AdditionalNotes    *string             `gorm:"type:text" json:"additional_notes"`
}

func (AbstractFormat) TableName() string { return "abstract_formats" }
func (m *AbstractFormat) GetID() uint    { return m.ID }
func (m *AbstractFormat) SetID(id uint)  { m.ID = id }
