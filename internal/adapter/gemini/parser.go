package gemini

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/floatchat/ocean-query-service/internal/domain"
)

// fencedJSONRe matches the first ```json ... ``` block in a model reply.
var fencedJSONRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// parseVisualization extracts an optional model-supplied visualization
// descriptor from reply text. It returns the descriptor (empty when absent
// or malformed) and the reply with the JSON block stripped, so the
// conversational text stays clean. Parsing is best-effort: a bad block is
// dropped, never surfaced as an error.
func parseVisualization(text string) (domain.Visualization, string) {
	match := fencedJSONRe.FindStringSubmatchIndex(text)
	if match == nil {
		return domain.Visualization{}, text
	}

	raw := text[match[2]:match[3]]
	cleaned := strings.TrimSpace(text[:match[0]] + text[match[1]:])

	var viz domain.Visualization
	if err := json.Unmarshal([]byte(raw), &viz); err != nil {
		return domain.Visualization{}, cleaned
	}
	if viz.Chart != nil && (viz.Chart.XKey == "" || viz.Chart.YKey == "") {
		// A chart the renderer cannot key is useless; fall back.
		return domain.Visualization{}, cleaned
	}
	return viz, cleaned
}
