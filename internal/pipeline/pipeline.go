// Package pipeline orchestrates one chat request: upstream text generation,
// location extraction, data-type classification, synthetic dataset
// generation, and visualization synthesis, in that fixed order.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/floatchat/ocean-query-service/internal/domain"
	"github.com/floatchat/ocean-query-service/internal/observability"
)

// apologyText is the fixed degraded reply when the upstream text-generation
// call fails. Technical detail never reaches the user.
const apologyText = "I apologize, but I'm having trouble connecting to the AI service right now. Please try again in a moment."

// TextGenerator is the external text-generation collaborator: given a user
// query it returns a conversational reply, optionally carrying a
// model-supplied visualization descriptor.
type TextGenerator interface {
	Generate(ctx context.Context, query string) (domain.UpstreamResult, error)
}

// AnalyticsPublisher records completed queries on a side channel. A nil
// publisher disables analytics.
type AnalyticsPublisher interface {
	PublishQueryEvent(ctx context.Context, event domain.QueryEvent) error
}

// Pipeline is the single entry point for chat queries. Phases run strictly
// in sequence; each is a pure function of the previous phase's output plus
// the original query text, and none may be skipped.
type Pipeline struct {
	generator TextGenerator
	analytics AnalyticsPublisher
	clock     clockwork.Clock
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Pipeline. analytics may be nil; a nil clock uses real time.
func New(generator TextGenerator, analytics AnalyticsPublisher, clk clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	return &Pipeline{
		generator: generator,
		analytics: analytics,
		clock:     clk,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness reports whether the pipeline can serve queries.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if p.generator == nil {
		return errors.New("no text generator configured")
	}
	return nil
}

// Handle runs the full query pipeline. It never returns an error: an
// upstream failure degrades to a fixed apologetic reply with an empty
// visualization and no dataset.
func (p *Pipeline) Handle(ctx context.Context, query string) domain.ChatResponse {
	start := p.clock.Now()

	upstream, err := p.generator.Generate(ctx, query)
	p.metrics.UpstreamLatency.Observe(p.clock.Since(start).Seconds())
	if err != nil {
		p.logger.Warn("text generation failed, degrading", "error", err)
		p.metrics.UpstreamErrors.Inc()
		p.metrics.QueriesTotal.WithLabelValues(string(domain.DataTypeGeneral)).Inc()

		response := domain.ChatResponse{
			Text:      apologyText,
			DataType:  domain.DataTypeGeneral,
			Locations: []string{},
		}
		p.publish(ctx, query, response, true, p.clock.Since(start))
		return response
	}

	// Locations and data type are read from both the query and the reply:
	// the model is prompted to echo locations it recognizes, but the raw
	// query is authoritative when the reply omits them.
	analysisText := query + "\n" + upstream.Text

	locations := domain.ExtractLocations(analysisText)
	dataType := domain.ClassifyDataType(analysisText)

	var location string
	if len(locations) > 0 {
		location = locations[0]
	}
	data := domain.GenerateOceanData(dataType, location)

	// The upstream descriptor always wins; synthesis only fills the gap.
	visualization := upstream.Visualization
	if visualization.Empty() {
		visualization = domain.SynthesizeVisualization(dataType, data, location)
	}

	p.metrics.QueriesTotal.WithLabelValues(string(dataType)).Inc()

	response := domain.ChatResponse{
		Text:          upstream.Text,
		DataType:      dataType,
		Locations:     locations,
		Visualization: visualization,
		OceanData:     data,
	}
	p.publish(ctx, query, response, false, p.clock.Since(start))
	return response
}

func (p *Pipeline) publish(ctx context.Context, query string, response domain.ChatResponse, degraded bool, elapsed time.Duration) {
	if p.analytics == nil {
		return
	}
	event := domain.QueryEvent{
		Query:            query,
		DataType:         response.DataType,
		Locations:        response.Locations,
		HasVisualization: !response.Visualization.Empty(),
		Degraded:         degraded,
		DurationMs:       elapsed.Milliseconds(),
		Timestamp:        p.clock.Now().UTC(),
	}
	if err := p.analytics.PublishQueryEvent(ctx, event); err != nil {
		p.logger.Warn("analytics publish failed", "error", err)
		p.metrics.AnalyticsPublishErrors.Inc()
	}
}

// StaticGenerator is the offline TextGenerator used when no AI backend is
// configured: a fixed acknowledgement, no descriptor. Classification and
// extraction then run against the raw query alone.
type StaticGenerator struct{}

func (StaticGenerator) Generate(_ context.Context, _ string) (domain.UpstreamResult, error) {
	return domain.UpstreamResult{
		Text: "FloatChat is running without an AI backend. Here is the synthetic ocean data that matches your query.",
	}, nil
}
