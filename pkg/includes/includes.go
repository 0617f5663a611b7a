// Package includes turns a client supplied ?include= list into typed eager-load paths.
package includes

import (
	"strings"

	"gorm.io/gorm"
)

type Include string

const (
	Speakers               Include = "speakers"
	ImportantDates         Include = "important_dates"
	Committees             Include = "committees"
	Documents              Include = "documents"
	Assets                 Include = "assets"
	Location               Include = "location"
	ResearchAreas          Include = "research_areas"
	AuthorConfig           Include = "author_config"
	SubmissionMethods      Include = "submission_methods"
	PresentationGuidelines Include = "presentation_guidelines"
	Contacts               Include = "contacts"
	SocialMedia            Include = "social_media"
	AbstractFormats        Include = "abstract_formats"
	RegistrationFees       Include = "registration_fees"
	PaymentPolicies        Include = "payment_policies"
	PaymentInformation     Include = "payment_information"
)

// LoadPath is one relation on models.Edition to preload. Order is empty for has-one relations.
type LoadPath struct {
	Relation string
	Order    string
}

const listOrder = "display_order ASC, id ASC"

var paths = map[Include][]LoadPath{
	Speakers:       {{Relation: "Speakers", Order: listOrder}},
	ImportantDates: {{Relation: "ImportantDates", Order: "date_value ASC, display_order ASC"}},
	Committees: {
		{Relation: "CommitteeMembers", Order: listOrder},
		{Relation: "CommitteeMembers.CommitteeType"},
	},
	Documents: {{Relation: "Documents", Order: listOrder}},
	Assets:    {{Relation: "Assets", Order: listOrder}},
	Location:  {{Relation: "EventLocation"}},
	ResearchAreas: {
		{Relation: "ResearchCategories", Order: listOrder},
		{Relation: "ResearchCategories.Areas", Order: listOrder},
	},
	AuthorConfig:           {{Relation: "AuthorPageConfig"}},
	SubmissionMethods:      {{Relation: "SubmissionMethods", Order: listOrder}},
	PresentationGuidelines: {{Relation: "PresentationGuidelines", Order: listOrder}},
	Contacts:               {{Relation: "ContactPersons", Order: listOrder}},
	SocialMedia:            {{Relation: "SocialMediaLinks", Order: listOrder}},
	AbstractFormats:        {{Relation: "AbstractFormats", Order: listOrder}},
	RegistrationFees:       {{Relation: "RegistrationFees", Order: "display_order ASC, fee_id ASC"}},
	PaymentPolicies:        {{Relation: "PaymentPolicies", Order: "display_order ASC, policy_id ASC"}},
	PaymentInformation:     {{Relation: "PaymentInformation", Order: "display_order ASC, payment_id ASC"}},
}

// All returns every known include in a stable order.
func All() []Include {
	return []Include{
		Speakers, ImportantDates, Committees, Documents, Assets, Location, ResearchAreas,
		AuthorConfig, SubmissionMethods, PresentationGuidelines, Contacts, SocialMedia,
		AbstractFormats, RegistrationFees, PaymentPolicies, PaymentInformation,
	}
}

func (i Include) Valid() bool {
	_, ok := paths[i]
	return ok
}

func (i Include) Paths() []LoadPath { return paths[i] }

// Set is an ordered, duplicate free list of known includes.
type Set []Include

// Parse splits raw on commas, trims each token and keeps the known ones in first-seen order.
// Unknown and empty tokens are dropped silently.
func Parse(raw string) Set {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var set Set
	seen := make(map[Include]struct{})
	for _, token := range strings.Split(raw, ",") {
		inc := Include(strings.ToLower(strings.TrimSpace(token)))
		if !inc.Valid() {
			continue
		}
		if _, dup := seen[inc]; dup {
			continue
		}
		seen[inc] = struct{}{}
		set = append(set, inc)
	}
	return set
}

func (s Set) Has(inc Include) bool {
	for _, i := range s {
		if i == inc {
			return true
		}
	}
	return false
}

func (s Set) Strings() []string {
	out := make([]string, len(s))
	for i, inc := range s {
		out[i] = string(inc)
	}
	return out
}

// Apply adds one Preload per load path of every include in the set.
func (s Set) Apply(db *gorm.DB) *gorm.DB {
	for _, inc := range s {
		for _, p := range inc.Paths() {
			if p.Order == "" {
				db = db.Preload(p.Relation)
				continue
			}
			order := p.Order
			db = db.Preload(p.Relation, func(tx *gorm.DB) *gorm.DB {
				return tx.Order(order)
			})
		}
	}
	return db
}
