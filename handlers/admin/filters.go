package handlers

import (
	"ristcon.api/pkg/queryparams"
	"ristcon.api/repositories"
	"ristcon.api/services"
)

func SpeakerFilter(p queryparams.ListParams) []repositories.QueryScope {
	return []repositories.QueryScope{services.WhereEqual("speaker_type", p.Type)}
}

func CommitteeFilter(p queryparams.ListParams) []repositories.QueryScope {
	return []repositories.QueryScope{services.WhereCommitteeName(p.Committee)}
}

func DocumentFilter(p queryparams.ListParams) []repositories.QueryScope {
	return []repositories.QueryScope{
		services.WhereEqual("document_category", p.Category),
		services.WhereActive("is_active", p.Active),
	}
}

func AssetFilter(p queryparams.ListParams) []repositories.QueryScope {
	return []repositories.QueryScope{services.WhereEqual("asset_type", p.Type)}
}

func ActiveFilter(p queryparams.ListParams) []repositories.QueryScope {
	return []repositories.QueryScope{services.WhereActive("is_active", p.Active)}
}

func ImportantDateFilter(p queryparams.ListParams) []repositories.QueryScope {
	return []repositories.QueryScope{
		services.OrderBy("date_value ASC"),
		services.WhereEqual("date_type", p.Type),
	}
}
