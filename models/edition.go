package models

import (
	"strconv"
	"time"
)

type EditionStatus string

const (
	EditionStatusDraft     EditionStatus = "draft"
	EditionStatusPublished EditionStatus = "published"
	EditionStatusArchived  EditionStatus = "archived"
	EditionStatusCancelled EditionStatus = "cancelled"
)

func (s EditionStatus) Valid() bool {
	switch s {
	case EditionStatusDraft, EditionStatusPublished, EditionStatusArchived, EditionStatusCancelled:
		return true
	}
	return false
}

type VenueType string

const (
	VenueTypePhysical VenueType = "physical"
	VenueTypeVirtual  VenueType = "virtual"
	VenueTypeHybrid   VenueType = "hybrid"
)

const DefaultSiteVersion = "1.0"

// Edition is one year's instance of the conference and the tenant boundary for all scoped data.
type Edition struct {
	BaseModel
	Year            int           `gorm:"not null;uniqueIndex:uniq_conference_editions_year,where:deleted_at IS NULL" json:"year"`
	EditionNumber   int           `gorm:"not null" json:"edition_number"`
	Name            string        `gorm:"type:varchar(255);not null" json:"name"`
	Slug            string        `gorm:"type:varchar(100);not null;uniqueIndex:uniq_conference_editions_slug,where:deleted_at IS NULL" json:"slug"`
	Status          EditionStatus `gorm:"type:varchar(20);not null;default:'draft';index:idx_status_active,priority:1" json:"status"`
	IsActiveEdition bool          `gorm:"not null;default:false;index:idx_status_active,priority:2;uniqueIndex:uniq_conference_editions_active,where:is_active_edition = true AND deleted_at IS NULL" json:"is_active_edition"`

	ConferenceDate    time.Time  `gorm:"type:date;not null" json:"conference_date"`
	VenueType         VenueType  `gorm:"type:varchar(20);not null;default:'physical'" json:"venue_type"`
	VenueLocation     *string    `gorm:"type:varchar(255)" json:"venue_location"`
	Theme             string     `gorm:"type:text;not null" json:"theme"`
	Description       *string    `gorm:"type:text" json:"description"`
	GeneralEmail      string     `gorm:"type:varchar(255);not null" json:"general_email"`
	AvailabilityHours *string    `gorm:"type:varchar(255)" json:"availability_hours"`
	CopyrightYear     int        `gorm:"not null" json:"copyright_year"`
	SiteVersion       string     `gorm:"type:varchar(20);not null;default:'1.0'" json:"site_version"`
	LastUpdated       *time.Time `json:"last_updated"`
	IsLegacySite      bool       `gorm:"not null;default:false" json:"is_legacy_site"`
	LegacyWebsiteURL  *string    `gorm:"type:text" json:"legacy_website_url"`

	Speakers               []Speaker               `gorm:"foreignKey:EditionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"speakers,omitempty"`
	ImportantDates         []ImportantDate         `gorm:"foreignKey:EditionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"important_dates,omitempty"`
	CommitteeMembers       []CommitteeMember       `gorm:"foreignKey:EditionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"committee_members,omitempty"`
	ContactPersons         []ContactPerson         `gorm:"foreignKey:EditionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"contact_persons,omitempty"`
	Documents              []ConferenceDocument    `gorm:"foreignKey:EditionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"documents,omitempty"`
	Assets                 []ConferenceAsset       `gorm:"foreignKey:EditionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"assets,omitempty"`
	ResearchCategories     []ResearchCategory      `gorm:"foreignKey:EditionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"research_categories,omitempty"`
	SubmissionMethods      []SubmissionMethod      `gorm:"foreignKey:EditionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"submission_methods,omitempty"`
	PresentationGuidelines []PresentationGuideline `gorm:"foreignKey:EditionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"presentation_guidelines,omitempty"`
	PaymentInformation     []PaymentInformation    `gorm:"foreignKey:EditionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"payment_information,omitempty"`
	RegistrationFees       []RegistrationFee       `gorm:"foreignKey:EditionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"registration_fees,omitempty"`
	PaymentPolicies        []PaymentPolicy         `gorm:"foreignKey:EditionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"payment_policies,omitempty"`
	SocialMediaLinks       []SocialMediaLink       `gorm:"foreignKey:EditionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"social_media_links,omitempty"`
	AbstractFormats        []AbstractFormat        `gorm:"foreignKey:EditionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"abstract_formats,omitempty"`
	EventLocation          *EventLocation          `gorm:"foreignKey:EditionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"event_location,omitempty"`
	AuthorPageConfig       *AuthorPageConfig       `gorm:"foreignKey:EditionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"author_page_config,omitempty"`
}

func (Edition) TableName() string { return "conference_editions" }

// SlugForYear is the URL identifier every edition uses.
func SlugForYear(year int) string { return strconv.Itoa(year) }

// CanBeDeleted reports whether the lifecycle allows removing the edition.
func (e *Edition) CanBeDeleted() bool {
	return e.Status != EditionStatusPublished && !e.IsActiveEdition
}
