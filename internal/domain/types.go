package domain

import "time"

// DataType is the closed set of oceanographic parameter categories a query
// can resolve to. Classification is total: every query maps to exactly one.
type DataType string

const (
	DataTypeTemperature DataType = "temperature"
	DataTypeSalinity    DataType = "salinity"
	DataTypePressure    DataType = "pressure"
	DataTypeWind        DataType = "wind"
	DataTypeWaves       DataType = "waves"
	DataTypeArgo        DataType = "argo"
	DataTypeConditions  DataType = "conditions"
	DataTypeTrends      DataType = "trends"
	DataTypeGeneral     DataType = "general"
)

// Coordinates is a WGS-84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OceanDataPoint is a single sample. Used both as a profile sample (depth
// varies, timestamp fixed) and as a time-series sample (timestamp varies,
// depth fixed at zero).
type OceanDataPoint struct {
	Timestamp     time.Time `json:"timestamp"`
	Depth         float64   `json:"depth"`
	Temperature   float64   `json:"temperature"`
	Salinity      float64   `json:"salinity"`
	Pressure      float64   `json:"pressure"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	WindSpeed     float64   `json:"windSpeed,omitempty"`
	WindDirection float64   `json:"windDirection,omitempty"`
	WaveHeight    float64   `json:"waveHeight,omitempty"`
}

// OceanProfile is an ordered sequence of samples indexed by increasing depth.
type OceanProfile struct {
	Location    string           `json:"location"`
	Coordinates Coordinates      `json:"coordinates"`
	DataPoints  []OceanDataPoint `json:"dataPoints"`
	ProfileType DataType         `json:"profileType"`
}

// TimeSeriesPoint is one dated reading in a TimeSeriesData sequence.
type TimeSeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// TimeSeriesData is an ordered-by-date series for a single parameter.
type TimeSeriesData struct {
	Location  string            `json:"location"`
	Parameter string            `json:"parameter"`
	Data      []TimeSeriesPoint `json:"data"`
	Trend     string            `json:"trend"` // "increasing", "decreasing", or "stable"
	Average   float64           `json:"average"`
}

// ArgoFloat describes one float in the (mock) ARGO network roster.
type ArgoFloat struct {
	FloatID        string       `json:"floatId"`
	Name           string       `json:"name"`
	Status         string       `json:"status"` // "active", "inactive", or "maintenance"
	LastUpdate     time.Time    `json:"lastUpdate"`
	Location       Coordinates  `json:"location"`
	CurrentData    FloatReading `json:"currentData"`
	Mission        string       `json:"mission"`
	DeploymentDate string       `json:"deploymentDate"`
	DistanceKm     float64      `json:"distanceKm,omitempty"` // from the queried region center
}

// FloatReading is the latest sensor snapshot reported by a float.
type FloatReading struct {
	Temperature float64 `json:"temperature"`
	Salinity    float64 `json:"salinity"`
	Pressure    float64 `json:"pressure"`
	Depth       float64 `json:"depth"`
}

// ConditionReading is one row of a current-conditions summary.
type ConditionReading struct {
	Parameter string  `json:"parameter"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Status    string  `json:"status"`
}

// OceanConditions is a point-in-time surface/subsurface snapshot.
type OceanConditions struct {
	Location  string             `json:"location"`
	Timestamp time.Time          `json:"timestamp"`
	Readings  []ConditionReading `json:"readings"`
}

// TrendPoint is one month of the multi-parameter trends history.
type TrendPoint struct {
	Month       string  `json:"month"`
	Temperature float64 `json:"temperature"`
	Salinity    float64 `json:"salinity"`
	Pressure    float64 `json:"pressure"`
}

// TrendSeries is the monthly temperature/salinity/pressure history backing
// trends queries.
type TrendSeries struct {
	Location string       `json:"location"`
	Data     []TrendPoint `json:"data"`
}

// OceanData is the category-specific dataset produced for one query.
// Exactly one field is populated; a nil OceanData means the category has
// no generator (waves, general).
type OceanData struct {
	Profile    *OceanProfile    `json:"profile,omitempty"`
	TimeSeries *TimeSeriesData  `json:"timeSeries,omitempty"`
	Floats     []ArgoFloat      `json:"argoFloats,omitempty"`
	Conditions *OceanConditions `json:"conditions,omitempty"`
	Trends     *TrendSeries     `json:"trends,omitempty"`
}

// ChartSpec is a declarative chart descriptor. Data rows are opaque records;
// XKey and YKey name the fields the renderer should plot.
type ChartSpec struct {
	Kind  string           `json:"type"` // "line", "bar", "scatter", or "pie"
	Data  []map[string]any `json:"data"`
	XKey  string           `json:"xKey"`
	YKey  string           `json:"yKey"`
	Title string           `json:"title"`
	Unit  string           `json:"unit,omitempty"`
}

// MapMarker pins one payload-carrying marker on a map descriptor.
type MapMarker struct {
	Position Coordinates `json:"position"`
	Data     any         `json:"data"`
}

// MapSpec is a declarative map descriptor.
type MapSpec struct {
	Center  Coordinates `json:"center"`
	Zoom    int         `json:"zoom"`
	Markers []MapMarker `json:"markers,omitempty"`
}

// Visualization is the tagged union rendered by the chart/map widgets.
// Both fields nil means "nothing to render", which is a valid outcome.
type Visualization struct {
	Chart *ChartSpec `json:"chart,omitempty"`
	Map   *MapSpec   `json:"map,omitempty"`
}

// Empty reports whether the descriptor carries neither a chart nor a map.
func (v Visualization) Empty() bool {
	return v.Chart == nil && v.Map == nil
}

// UpstreamResult is what the text-generation collaborator returns: the
// conversational reply plus an optional model-supplied descriptor.
type UpstreamResult struct {
	Text          string
	Visualization Visualization
}

// ChatResponse is the combined answer for one query.
type ChatResponse struct {
	Text          string        `json:"text"`
	DataType      DataType      `json:"dataType"`
	Locations     []string      `json:"locations"`
	Visualization Visualization `json:"visualizations"`
	OceanData     *OceanData    `json:"oceanData,omitempty"`
}

// QueryEvent is the analytics record published after each completed query.
type QueryEvent struct {
	Query            string    `json:"query"`
	DataType         DataType  `json:"data_type"`
	Locations        []string  `json:"locations,omitempty"`
	HasVisualization bool      `json:"has_visualization"`
	Degraded         bool      `json:"degraded"`
	DurationMs       int64     `json:"duration_ms"`
	Timestamp        time.Time `json:"timestamp"`
}
