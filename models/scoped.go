package models

// Entity is what the generic scoped repository needs from a model pointer.
type Entity interface {
	Scoped
	GetID() uint
	SetID(id uint)
}

// ScopedTable describes one edition-scoped table.
type ScopedTable struct {
	Name  string
	Model any
}

// ScopedTables lists every edition-scoped table in migration order.
// committee_members must follow committee_types, which is migrated separately.
func ScopedTables() []ScopedTable {
	return []ScopedTable{
		{Name: ImportantDate{}.TableName(), Model: &ImportantDate{}},
		{Name: Speaker{}.TableName(), Model: &Speaker{}},
		{Name: CommitteeMember{}.TableName(), Model: &CommitteeMember{}},
		{Name: ContactPerson{}.TableName(), Model: &ContactPerson{}},
		{Name: ConferenceDocument{}.TableName(), Model: &ConferenceDocument{}},
		{Name: ConferenceAsset{}.TableName(), Model: &ConferenceAsset{}},
		{Name: ResearchCategory{}.TableName(), Model: &ResearchCategory{}},
		{Name: SubmissionMethod{}.TableName(), Model: &SubmissionMethod{}},
		{Name: PresentationGuideline{}.TableName(), Model: &PresentationGuideline{}},
		{Name: PaymentInformation{}.TableName(), Model: &PaymentInformation{}},
		{Name: RegistrationFee{}.TableName(), Model: &RegistrationFee{}},
		{Name: PaymentPolicy{}.TableName(), Model: &PaymentPolicy{}},
		{Name: SocialMediaLink{}.TableName(), Model: &SocialMediaLink{}},
		{Name: AbstractFormat{}.TableName(), Model: &AbstractFormat{}},
		{Name: EventLocation{}.TableName(), Model: &EventLocation{}},
		{Name: AuthorPageConfig{}.TableName(), Model: &AuthorPageConfig{}},
	}
}
