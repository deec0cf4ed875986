package domain

import "strings"

// classifierRules is the priority-ordered keyword table. First match wins.
// Specific physical parameters come before generic terms ("time",
// "condition") that can appear inside unrelated sentences; reordering
// changes classification results, so the order is part of the contract.
var classifierRules = []struct {
	dataType DataType
	keywords []string
}{
	{DataTypeTemperature, []string{"temperature", "temp"}},
	{DataTypeSalinity, []string{"salinity", "salt"}},
	{DataTypePressure, []string{"pressure"}},
	{DataTypeWind, []string{"wind"}},
	{DataTypeWaves, []string{"wave"}},
	{DataTypeArgo, []string{"argo", "float"}},
	{DataTypeTrends, []string{"trend", "time", "over time"}},
	{DataTypeConditions, []string{"condition"}},
}

// ClassifyDataType maps free text to exactly one DataType via ordered
// case-insensitive substring matching. Total: unmatched text is general.
func ClassifyDataType(text string) DataType {
	lower := strings.ToLower(text)
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.dataType
			}
		}
	}
	return DataTypeGeneral
}
