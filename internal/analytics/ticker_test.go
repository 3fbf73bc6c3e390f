package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicker(t *testing.T) {
	tests := []struct {
		name    string
		partner string
		want    string
	}{
		{"empty name", "", "UNK"},
		{"known brand", "Google", "GOOGL"},
		{"known brand with ampersand", "AT&T", "T"},
		{"known multi-word brand", "The Trade Desk", "TTD"},
		{"suffixes stripped to one short word", "Acme Media Group", "ACME"},
		{"suffixes stripped to two words", "Delta Sky Partners Holdings", "DESK"},
		{"single long word", "Horizon", "HOON"},
		{"single short word", "Hulu", "HULU"},
		{"two words", "Blue River", "BLRI"},
		{"two words one short", "X Factor", "XF"},
		{"three words", "Blue River North", "BRNL"},
		{"four words", "One Two Three Four", "OTTF"},
		{"five words uses first four", "One Two Three Four Five", "OTTF"},
		{"only suffixes falls back to original", "Media Group", "MEDI"},
		{"hyphen and dot split", "north-star.labs", "NSLO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ticker(tt.partner))
		})
	}
}

func TestTickerDeterminism(t *testing.T) {
	for _, p := range []string{"", "Google", "Acme Media Group", "Some Long Partner Name"} {
		assert.Equal(t, Ticker(p), Ticker(p))
	}
}
