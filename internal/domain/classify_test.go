package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDataType(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected DataType
	}{
		{"temperature keyword", "show me the temperature profile", DataTypeTemperature},
		{"temp abbreviation", "what's the water temp?", DataTypeTemperature},
		{"salinity keyword", "salinity levels near Miami", DataTypeSalinity},
		{"salt keyword", "how salty is the Atlantic", DataTypeSalinity},
		{"pressure keyword", "pressure at 1000m depth", DataTypePressure},
		{"wind keyword", "wind speed this month", DataTypeWind},
		{"wave keyword", "wave height forecast", DataTypeWaves},
		{"argo keyword", "where are the argo platforms", DataTypeArgo},
		{"float keyword", "nearest float to Sydney", DataTypeArgo},
		{"trend keyword", "warming trend in the Pacific", DataTypeTrends},
		{"time keyword", "how does it change with time", DataTypeTrends},
		{"condition keyword", "current sea conditions", DataTypeConditions},
		{"no match defaults to general", "tell me about the ocean", DataTypeGeneral},
		{"empty input defaults to general", "", DataTypeGeneral},
		{"case insensitive", "TEMPERATURE DATA PLEASE", DataTypeTemperature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyDataType(tt.text))
		})
	}
}

// Priority ordering is part of the contract: specific physical parameters
// win over generic terms that appear later in the rule table.
func TestClassifyDataType_PriorityOrdering(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected DataType
	}{
		{"temperature beats conditions", "temperature conditions today", DataTypeTemperature},
		{"temperature beats trends", "temperature over time", DataTypeTemperature},
		{"salinity beats trends", "salinity trend analysis", DataTypeSalinity},
		{"pressure beats wind", "pressure and wind", DataTypePressure},
		{"wind beats waves", "wind driven waves", DataTypeWind},
		{"argo beats trends", "argo floats over time", DataTypeArgo},
		{"trends beats conditions", "conditions changing over time", DataTypeTrends},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyDataType(tt.text))
		})
	}
}

// Classification is total: every input resolves to exactly one member of
// the closed enumeration.
func TestClassifyDataType_Totality(t *testing.T) {
	valid := map[DataType]bool{
		DataTypeTemperature: true, DataTypeSalinity: true, DataTypePressure: true,
		DataTypeWind: true, DataTypeWaves: true, DataTypeArgo: true,
		DataTypeConditions: true, DataTypeTrends: true, DataTypeGeneral: true,
	}

	inputs := []string{
		"", "???", "show me temperature and salinity and pressure",
		"completely unrelated text", "日本語のクエリ", "12345",
	}
	for _, input := range inputs {
		result := ClassifyDataType(input)
		assert.True(t, valid[result], "input %q produced unknown type %q", input, result)
	}
}
