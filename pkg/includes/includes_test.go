package includes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Set
	}{
		{name: "empty", raw: "", want: nil},
		{name: "blank", raw: "  ,  ", want: nil},
		{name: "unknown dropped and tokens trimmed", raw: "speakers, bogus ,committees", want: Set{Speakers, Committees}},
		{name: "duplicates keep first position", raw: "location,speakers,location", want: Set{Location, Speakers}},
		{name: "case insensitive", raw: "Important_Dates", want: Set{ImportantDates}},
		{name: "only unknown", raw: "users,passwords", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

func TestEveryIncludeHasPaths(t *testing.T) {
	all := All()
	assert.Len(t, all, 16)
	for _, inc := range all {
		assert.True(t, inc.Valid(), inc)
		assert.NotEmpty(t, inc.Paths(), inc)
	}
}

func TestSetHelpers(t *testing.T) {
	s := Parse("committees,research_areas")
	assert.True(t, s.Has(Committees))
	assert.False(t, s.Has(Speakers))
	assert.Equal(t, []string{"committees", "research_areas"}, s.Strings())
	assert.Len(t, Committees.Paths(), 2)
}
