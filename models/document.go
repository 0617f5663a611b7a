package models

type DocumentCategory string

const (
	DocumentCategoryAbstractTemplate     DocumentCategory = "abstract_template"
	DocumentCategoryAuthorForm           DocumentCategory = "author_form"
	DocumentCategoryRegistrationForm     DocumentCategory = "registration_form"
	DocumentCategoryPresentationTemplate DocumentCategory = "presentation_template"
	DocumentCategoryCameraReadyTemplate  DocumentCategory = "camera_ready_template"
	DocumentCategoryOther                DocumentCategory = "other"
)

// ConferenceDocument stores metadata of a downloadable file; the file itself lives elsewhere.
type ConferenceDocument struct {
	ID uint `gorm:"primaryKey" json:"id"`
	ScopedBase
	DocumentCategory   DocumentCategory `gorm:"type:varchar(40);not null;index" json:"document_category" validate:"required,oneof=abstract_template author_form registration_form presentation_template camera_ready_template other"`
	FileName           string           `gorm:"type:varchar(255);not null" json:"file_name" validate:"required,max=255"`
	FilePath           string           `gorm:"type:varchar(255);not null" json:"file_path" validate:"required,max=255"`
	DisplayName        string           `gorm:"type:varchar(255);not null" json:"display_name" validate:"required,max=255"`
	IsActive           bool             `gorm:"not null" json:"is_active"`
	ButtonWidthPercent *int             `json:"button_width_percent" validate:"omitempty,min=1,max=100"`
	MimeType           string           `gorm:"type:varchar(255);not null" json:"mime_type" validate:"required"`
	FileSize           int64            `gorm:"not null;default:0" json:"file_size" validate:"gte=0"`
}

func (ConferenceDocument) TableName() string { return "conference_documents" }
func (m *ConferenceDocument) GetID() uint    { return m.ID }
func (m *ConferenceDocument) SetID(id uint)  { m.ID = id }
func (m *ConferenceDocument) ApplyDefaults() { m.IsActive = true }

type AssetType string

const (
	AssetTypeLogo     AssetType = "logo"
	AssetTypePoster   AssetType = "poster"
	AssetTypeBanner   AssetType = "banner"
	AssetTypeBrochure AssetType = "brochure"
	AssetTypeImage    AssetType = "image"
	AssetTypeOther    AssetType = "other"
)

type ConferenceAsset struct {
	ID uint `gorm:"primaryKey" json:"id"`
	ScopedBase
	AssetType    AssetType `gorm:"type:varchar(20);not null;index" json:"asset_type" validate:"required,oneof=logo poster banner brochure image other"`
	FileName     string    `gorm:"type:varchar(255);not null" json:"file_name" validate:"required,max=255"`
	FilePath     string    `gorm:"type:varchar(255);not null" json:"file_path" validate:"required,max=255"`
	AltText      *string   `gorm:"type:varchar(255)" json:"alt_text"`
	UsageContext *string   `gorm:"type:varchar(255)" json:"usage_context"`
	MimeType     string    `gorm:"type:varchar(255);not null" json:"mime_type" validate:"required"`
	FileSize     int64     `gorm:"not null;default:0" json:"file_size" validate:"gte=0"`
}

func (ConferenceAsset) TableName() string { return "conference_assets" }
func (m *ConferenceAsset) GetID() uint    { return m.ID }
func (m *ConferenceAsset) SetID(id uint)  { m.ID = id }
