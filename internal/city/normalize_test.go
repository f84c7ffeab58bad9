package city

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Zambaonga City", "Zamboanga"},
		{"  zamboanga city ", "Zamboanga"},
		{"CITY OF MANILA", "Manila"},
		{"Quezon-City", "Quezon"},
		{"Lapu-Lapu", "Lapu Lapu"},
		{"city of san fernando", "San Fernando"},
		{"General   Santos\tCity", "General Santos"},
		{"Cityscape Heights", "Cityscape Heights"},
		{"ofelia", "Ofelia"},
		{"DAVAO", "Davao"},
		{"City", ""},
		{"  of  ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Zambaonga City", "city of-manila", "x-of", "Lapu-Lapu City", "SAN JUAN city of",
		"of-city", "Ñ-ormoc", "  angeles   city ", "cebu_city", "zamba city onga", "123 city",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
