// Package domain models FloatChat ocean-data queries and their derived
// artifacts: extracted locations, a classified parameter category, a
// synthetic dataset, and a declarative visualization descriptor.
//
// # Query Interpretation
//
// A user query is free text. Two total functions interpret it:
//
//	ExtractLocations — gazetteer of coastal cities plus three regex
//	  patterns (preposition-led, area-suffixed, imperative-led), with
//	  dedup and stop-word filtering. Capitalization-sensitive on the
//	  pattern side: lowercase-only input never fires a pattern.
//	ClassifyDataType — ordered case-insensitive substring priority over
//	  a closed nine-category enumeration, defaulting to general. The
//	  order is a contract: specific physical parameters (temperature,
//	  salinity, pressure) are checked before generic terms like "time"
//	  or "condition" that can appear inside unrelated sentences.
//
// # Synthetic Data
//
// Generated datasets are deterministic in shape, not in value: the depth
// ladder, value bounds, and gradients (temperature non-increasing with
// depth, salinity drifting up with depth) are fixed, while most readings
// carry a small bounded random perturbation. The monthly trends history is
// fully fixed. There is no geospatial model; the
// location only labels the dataset.
//
// # Visualization Descriptors
//
// A Visualization is a tagged union over a chart (line/bar/scatter/pie
// with x/y field keys, title, unit) and a map (center, zoom, markers).
// When the upstream text-generation service supplies its own descriptor
// that descriptor always wins; SynthesizeVisualization only fills the gap.
package domain
