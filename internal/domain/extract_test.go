package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLocations(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "gazetteer and pattern overlap dedups",
			text:     "Show me data for Miami near the equator",
			expected: []string{"Miami"},
		},
		{
			name:     "preposition-led phrase",
			text:     "What is the salinity near Reykjavik today?",
			expected: []string{"Reykjavik"},
		},
		{
			name:     "area-suffixed phrase",
			text:     "Any floats in the Galway coast waters?",
			expected: []string{"Galway"},
		},
		{
			name:     "multi-word capitalized phrase",
			text:     "display data for Puerto Montt please",
			expected: []string{"Puerto Montt"},
		},
		{
			name:     "multiple gazetteer cities in gazetteer order",
			text:     "compare Tokyo with Sydney",
			expected: []string{"Tokyo", "Sydney"},
		},
		{
			name:     "repeated mention emits once",
			text:     "Miami, Miami, and Miami again",
			expected: []string{"Miami"},
		},
		{
			name:     "stop words and lowercase yield nothing",
			text:     "ocean and sea data",
			expected: []string{},
		},
		{
			name:     "lowercase place never fires a pattern",
			text:     "show me data for reykjavik",
			expected: []string{},
		},
		{
			name:     "no locations at all",
			text:     "what is a thermocline?",
			expected: []string{},
		},
		{
			name:     "empty input",
			text:     "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractLocations(tt.text)
			if len(tt.expected) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractLocations_GazetteerIsCaseInsensitive(t *testing.T) {
	got := ExtractLocations("any floats near MIAMI?")
	assert.Equal(t, []string{"Miami"}, got)
}

func TestExtractLocations_CapitalizedStopWordDropped(t *testing.T) {
	// "Temperature" matches the preposition pattern via "for Temperature"
	// but is a stop word and must not survive the filter.
	got := ExtractLocations("show me readings for Temperature")
	assert.Empty(t, got)
}

func TestExtractLocations_FirstSeenOrderPreserved(t *testing.T) {
	// Gazetteer hits come first regardless of position in the text.
	got := ExtractLocations("Data near Valparaiso and also for Tokyo")
	assert.Equal(t, []string{"Tokyo", "Valparaiso"}, got)
}
