package services

import (
	"context"
	"errors"

	"ristcon.api/models"
	"ristcon.api/repositories"

	"gorm.io/gorm"
)

// ScopedServices bundles one CRUD service per edition-scoped kind.
type ScopedServices struct {
	ImportantDates         IScopedService[models.ImportantDate]
	Speakers               IScopedService[models.Speaker]
	CommitteeMembers       IScopedService[models.CommitteeMember]
	ContactPersons         IScopedService[models.ContactPerson]
	Documents              IScopedService[models.ConferenceDocument]
	Assets                 IScopedService[models.ConferenceAsset]
	ResearchCategories     IScopedService[models.ResearchCategory]
	SubmissionMethods      IScopedService[models.SubmissionMethod]
	PresentationGuidelines IScopedService[models.PresentationGuideline]
	PaymentInformation     IScopedService[models.PaymentInformation]
	RegistrationFees       IScopedService[models.RegistrationFee]
	PaymentPolicies        IScopedService[models.PaymentPolicy]
	SocialMediaLinks       IScopedService[models.SocialMediaLink]
	AbstractFormats        IScopedService[models.AbstractFormat]
	EventLocations         IScopedService[models.EventLocation]
	AuthorPageConfigs      IScopedService[models.AuthorPageConfig]
}

// NewScopedServices builds one service per scoped kind. Committee members check their committee type on write.
func NewScopedServices(db *gorm.DB) *ScopedServices {
	return &ScopedServices{
		ImportantDates:         NewScopedService[models.ImportantDate](db, nil),
		Speakers:               NewScopedService[models.Speaker](db, nil),
		CommitteeMembers:       NewScopedService[models.CommitteeMember](db, checkCommitteeType),
		ContactPersons:         NewScopedService[models.ContactPerson](db, nil),
		Documents:              NewScopedService[models.ConferenceDocument](db, nil),
		Assets:                 NewScopedService[models.ConferenceAsset](db, nil),
		ResearchCategories:     NewScopedService[models.ResearchCategory](db, nil),
		SubmissionMethods:      NewScopedService[models.SubmissionMethod](db, nil),
		PresentationGuidelines: NewScopedService[models.PresentationGuideline](db, nil),
		PaymentInformation:     NewScopedService[models.PaymentInformation](db, nil),
		RegistrationFees:       NewScopedService[models.RegistrationFee](db, checkFeeAmounts),
		PaymentPolicies:        NewScopedService[models.PaymentPolicy](db, nil),
		SocialMediaLinks:       NewScopedService[models.SocialMediaLink](db, nil),
		AbstractFormats:        NewScopedService[models.AbstractFormat](db, nil),
		EventLocations:         NewScopedService[models.EventLocation](db, nil),
		AuthorPageConfigs:      NewScopedService[models.AuthorPageConfig](db, nil),
	}
}

func checkCommitteeType(ctx context.Context, tx *gorm.DB, member *models.CommitteeMember) error {
	_, err := repositories.NewCommitteeTypeRepositoryTx(tx).FindByID(ctx, member.CommitteeTypeID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrCommitteeTypeNotFound
	}
	return err
}

func checkFeeAmounts(_ context.Context, _ *gorm.DB, fee *models.RegistrationFee) error {
	fields := map[string]string{}
	if fee.Amount.IsNegative() {
		fields["amount"] = "must not be negative"
	}
	if fee.EarlyBirdAmount.Valid && fee.EarlyBirdAmount.Decimal.IsNegative() {
		fields["early_bird_amount"] = "must not be negative"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// List filters. Each returns nil when its value is empty so callers can pass them unconditionally.

// WhereEqual filters on column when value is not empty.
func WhereEqual(column, value string) repositories.QueryScope {
	if value == "" {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

// WhereActive filters on a boolean column when active is set.
func WhereActive(column string, active *bool) repositories.QueryScope {
	if active == nil {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", *active)
	}
}

// WhereCommitteeName filters committee members by the name of their committee type.
func WhereCommitteeName(name string) repositories.QueryScope {
	if name == "" {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN committee_types ON committee_types.id = committee_members.committee_type_id").
			Where("committee_types.committee_name = ?", name)
	}
}

// OrderBy puts an ordering ahead of the default display_order ordering.
func OrderBy(order string) repositories.QueryScope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(order)
	}
}
