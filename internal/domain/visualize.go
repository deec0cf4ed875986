package domain

import "strings"

// chartFieldMappings defines, per category, which dataset fields feed the
// chart axes and which unit labels the y axis.
var chartFieldMappings = map[DataType]struct {
	xKey, yKey, unit string
}{
	DataTypeTemperature: {"depth", "temperature", "°C"},
	DataTypeSalinity:    {"depth", "salinity", "PSU"},
	DataTypePressure:    {"depth", "pressure", "dbar"},
	DataTypeWind:        {"date", "windSpeed", "m/s"},
}

// SynthesizeVisualization builds the fallback descriptor for a generated
// dataset. It is only consulted when the upstream text-generation service
// did not supply its own descriptor; a supplied descriptor always wins and
// must never be overwritten by this fallback.
//
// Categories without a mapping (waves, general) yield an empty descriptor
// rather than an error.
func SynthesizeVisualization(dataType DataType, data *OceanData, location string) Visualization {
	if data == nil {
		return Visualization{}
	}

	title := synthesizeTitle(dataType, location)

	switch dataType {
	case DataTypeTemperature, DataTypeSalinity, DataTypePressure:
		if data.Profile == nil {
			return Visualization{}
		}
		m := chartFieldMappings[dataType]
		rows := make([]map[string]any, len(data.Profile.DataPoints))
		for i, p := range data.Profile.DataPoints {
			rows[i] = map[string]any{"depth": p.Depth, m.yKey: profileValue(dataType, p)}
		}
		return Visualization{Chart: &ChartSpec{
			Kind: "line", Data: rows, XKey: m.xKey, YKey: m.yKey, Title: title, Unit: m.unit,
		}}

	case DataTypeWind:
		if data.TimeSeries == nil {
			return Visualization{}
		}
		m := chartFieldMappings[dataType]
		rows := make([]map[string]any, len(data.TimeSeries.Data))
		for i, p := range data.TimeSeries.Data {
			rows[i] = map[string]any{"date": p.Date, "windSpeed": p.Value}
		}
		return Visualization{Chart: &ChartSpec{
			Kind: "line", Data: rows, XKey: m.xKey, YKey: m.yKey, Title: title, Unit: m.unit,
		}}

	case DataTypeArgo:
		center := defaultCoordinates
		if len(data.Floats) > 0 {
			center = data.Floats[0].Location
		}
		markers := make([]MapMarker, len(data.Floats))
		for i, f := range data.Floats {
			markers[i] = MapMarker{Position: f.Location, Data: f}
		}
		return Visualization{Map: &MapSpec{
			Center:  center,
			Zoom:    10,
			Markers: markers,
		}}

	case DataTypeTrends:
		if data.Trends == nil {
			return Visualization{}
		}
		rows := make([]map[string]any, len(data.Trends.Data))
		for i, p := range data.Trends.Data {
			rows[i] = map[string]any{
				"month": p.Month, "temperature": p.Temperature,
				"salinity": p.Salinity, "pressure": p.Pressure,
			}
		}
		// Temperature is the primary series; salinity and pressure ride
		// along in the rows for multi-line renderers.
		return Visualization{Chart: &ChartSpec{
			Kind: "line", Data: rows, XKey: "month", YKey: "temperature",
			Title: trendsTitle(location), Unit: "°C",
		}}

	case DataTypeConditions:
		if data.Conditions == nil {
			return Visualization{}
		}
		rows := make([]map[string]any, len(data.Conditions.Readings))
		for i, r := range data.Conditions.Readings {
			rows[i] = map[string]any{"parameter": r.Parameter, "value": r.Value}
		}
		return Visualization{Chart: &ChartSpec{
			Kind: "bar", Data: rows, XKey: "parameter", YKey: "value", Title: title,
		}}

	default:
		return Visualization{}
	}
}

// synthesizeTitle renders "<Type> Data - <location>" when a location is
// known, "<Type> Profile" otherwise.
func synthesizeTitle(dataType DataType, location string) string {
	name := string(dataType)
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	if location != "" && location != "Global" {
		return name + " Data - " + location
	}
	return name + " Profile"
}

func trendsTitle(location string) string {
	if location != "" && location != "Global" {
		return "6-Month Trends - " + location
	}
	return "Ocean Parameter Trends"
}

func profileValue(dataType DataType, p OceanDataPoint) float64 {
	switch dataType {
	case DataTypeSalinity:
		return p.Salinity
	case DataTypePressure:
		return p.Pressure
	default:
		return p.Temperature
	}
}
