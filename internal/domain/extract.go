package domain

import (
	"regexp"
	"strings"
)

// gazetteer is the fixed list of coastal and ocean-relevant cities matched
// by direct case-insensitive substring scan. Order matters: gazetteer hits
// are emitted in this order, ahead of any pattern matches.
var gazetteer = []string{
	"Miami", "Tokyo", "London", "Sydney", "San Francisco", "New York", "Los Angeles",
	"Barcelona", "Dubai", "Singapore", "Hong Kong", "Cape Town", "Rio de Janeiro",
	"Vancouver", "Seattle", "Boston", "Marseille", "Naples", "Athens", "Istanbul",
	"Mumbai", "Chennai", "Kolkata", "Bangkok", "Manila", "Jakarta", "Perth",
	"Melbourne", "Auckland", "Honolulu", "Miami Beach", "Key West", "Tampa",
	"Charleston", "Norfolk", "Baltimore", "Portland", "San Diego", "Monterey",
}

var locationPatterns = []*regexp.Regexp{
	// Preposition-led capitalized phrase: "near Miami", "for San Francisco".
	regexp.MustCompile(`\b(?:in|at|near|around|for|from|to)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\b`),
	// Capitalized phrase followed by an area word: "Tokyo region", "Miami waters".
	regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\s+(?:area|region|coast|waters?)\b`),
	// Imperative-led phrase: "show me data for Sydney", "find Barcelona".
	regexp.MustCompile(`\b(?:show|display|find|search)\s+(?:me\s+)?(?:data\s+for\s+)?([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\b`),
}

// locationStopWords are candidate strings that are never place names.
var locationStopWords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "for": true,
	"with": true, "data": true, "ocean": true, "sea": true, "water": true,
	"temperature": true, "salinity": true,
}

// ExtractLocations scans free text for place names: gazetteer entries first
// (one emission per city regardless of repeats), then the three extraction
// patterns in fixed order. The result is deduplicated preserving first-seen
// order, with stop words and too-short or too-long candidates dropped.
//
// The patterns require a leading capital letter, so lowercase-only input
// yields only gazetteer hits. A text with no place names yields an empty
// slice, never an error.
func ExtractLocations(text string) []string {
	var candidates []string

	lower := strings.ToLower(text)
	for _, city := range gazetteer {
		if strings.Contains(lower, strings.ToLower(city)) {
			candidates = append(candidates, city)
		}
	}

	for _, pattern := range locationPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			candidate := strings.TrimSpace(match[1])
			if len(candidate) > 2 && len(candidate) < 30 {
				candidates = append(candidates, candidate)
			}
		}
	}

	seen := make(map[string]bool, len(candidates))
	locations := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		if locationStopWords[strings.ToLower(c)] || len(c) <= 2 {
			continue
		}
		locations = append(locations, c)
	}
	return locations
}
