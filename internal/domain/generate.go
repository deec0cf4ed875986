package domain

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// defaultCoordinates is the fixed reference location used when a query does
// not resolve to real coordinates. Dataset shape never depends on location;
// the location only labels the output.
var defaultCoordinates = Coordinates{Latitude: 25.7617, Longitude: -80.1918}

// chatProfileDepths is the restricted depth ladder used for conversational
// profile responses. The data-fetch service uses the full 14-rung ladder.
var chatProfileDepths = []float64{0, 50, 100, 200, 500}

// Base readings per chat-profile depth, each perturbed by an independent
// bounded draw. Temperature decreases with depth, salinity drifts up.
var (
	profileTempBases  = []float64{25.2, 24.8, 23.5, 20.1, 15.3}
	profileTempJitter = []float64{2, 1.5, 1, 0.8, 0.5}

	profileSalinityBases  = []float64{35.1, 35.2, 35.3, 35.4, 35.6}
	profileSalinityJitter = []float64{0.2, 0.15, 0.1, 0.08, 0.05}

	profilePressureBases  = []float64{0, 51, 102, 204, 510}
	profilePressureJitter = []float64{0, 2, 3, 4, 5}
)

// trendSeriesBase is the fixed six-month multi-parameter history. Values
// are not perturbed: the trend shape is the point of the dataset.
var trendSeriesBase = []TrendPoint{
	{Month: "Jan 2023", Temperature: 24.2, Salinity: 35.1, Pressure: 1013},
	{Month: "Feb 2023", Temperature: 23.8, Salinity: 35.2, Pressure: 1015},
	{Month: "Mar 2023", Temperature: 25.1, Salinity: 35.0, Pressure: 1012},
	{Month: "Apr 2023", Temperature: 26.3, Salinity: 34.9, Pressure: 1010},
	{Month: "May 2023", Temperature: 27.1, Salinity: 34.8, Pressure: 1008},
	{Month: "Jun 2023", Temperature: 28.2, Salinity: 34.7, Pressure: 1006},
}

var windSeriesBase = []struct {
	date   string
	speed  float64
	jitter float64
}{
	{"2024-01-01", 12.5, 3},
	{"2024-01-15", 15.2, 2.5},
	{"2024-02-01", 18.7, 2},
	{"2024-02-15", 14.3, 2.8},
	{"2024-03-01", 16.8, 2.2},
	{"2024-03-15", 13.1, 2.5},
}

// GenerateOceanData produces a synthetic dataset for the classified type:
// a depth profile for temperature/salinity/pressure, a time series for
// wind, a two-float roster for argo, a conditions snapshot for conditions,
// and a monthly history for trends. Categories with no generator (waves,
// general) yield nil. The shape is deterministic per type; most values
// carry bounded random perturbation.
func GenerateOceanData(dataType DataType, location string) *OceanData {
	if location == "" {
		location = "Global"
	}

	switch dataType {
	case DataTypeTemperature, DataTypeSalinity, DataTypePressure:
		return &OceanData{Profile: generateChatProfile(dataType, location)}
	case DataTypeWind:
		return &OceanData{TimeSeries: generateWindSeries(location)}
	case DataTypeArgo:
		return &OceanData{Floats: GenerateFloatRoster(defaultCoordinates)}
	case DataTypeConditions:
		return &OceanData{Conditions: generateConditions(location)}
	case DataTypeTrends:
		return &OceanData{Trends: generateTrendSeries(location)}
	default:
		return nil
	}
}

// generateChatProfile builds the 5-point conversational depth profile.
// Temperature is forced monotonically non-increasing with a floor of 0;
// salinity is clamped to the plausible ocean range [30, 40].
func generateChatProfile(dataType DataType, location string) *OceanProfile {
	now := clock.Now()
	points := make([]OceanDataPoint, len(chatProfileDepths))
	prevTemp := profileTempBases[0] + profileTempJitter[0]

	for i, depth := range chatProfileDepths {
		temp := profileTempBases[i] + rand.Float64()*profileTempJitter[i]
		if temp > prevTemp {
			temp = prevTemp
		}
		temp = max(temp, 0)
		prevTemp = temp

		salinity := clamp(profileSalinityBases[i]+rand.Float64()*profileSalinityJitter[i], 30, 40)
		pressure := profilePressureBases[i] + rand.Float64()*profilePressureJitter[i]

		points[i] = OceanDataPoint{
			Timestamp:   now,
			Depth:       depth,
			Temperature: temp,
			Salinity:    salinity,
			Pressure:    pressure,
			Latitude:    defaultCoordinates.Latitude,
			Longitude:   defaultCoordinates.Longitude,
		}
	}

	return &OceanProfile{
		Location:    location,
		Coordinates: defaultCoordinates,
		DataPoints:  points,
		ProfileType: dataType,
	}
}

func generateWindSeries(location string) *TimeSeriesData {
	points := make([]TimeSeriesPoint, len(windSeriesBase))
	var sum float64
	for i, b := range windSeriesBase {
		value := b.speed + rand.Float64()*b.jitter
		sum += value
		points[i] = TimeSeriesPoint{Date: b.date, Value: value, Unit: "m/s"}
	}
	return &TimeSeriesData{
		Location:  location,
		Parameter: "windSpeed",
		Data:      points,
		Trend:     "stable",
		Average:   sum / float64(len(points)),
	}
}

// GenerateFloatRoster returns the fixed two-float roster near the given
// center. One float reports "now" and one reports an hour stale, so
// recency-based consumers have both cases to exercise.
func GenerateFloatRoster(center Coordinates) []ArgoFloat {
	now := clock.Now()
	return []ArgoFloat{
		{
			FloatID:    "1901234",
			Name:       "ARGO Float 1901234",
			Status:     "active",
			LastUpdate: now,
			Location: Coordinates{
				Latitude:  center.Latitude + (rand.Float64()-0.5)*2,
				Longitude: center.Longitude + (rand.Float64()-0.5)*2,
			},
			CurrentData: FloatReading{
				Temperature: 15.2 + rand.Float64()*10,
				Salinity:    35.1 + rand.Float64()*0.5,
				Pressure:    2000 + rand.Float64()*1000,
				Depth:       2000,
			},
			Mission:        "Temperature and salinity profiling",
			DeploymentDate: "2023-06-15",
		},
		{
			FloatID:    "1901235",
			Name:       "ARGO Float 1901235",
			Status:     "active",
			LastUpdate: now.Add(-time.Hour),
			Location: Coordinates{
				Latitude:  center.Latitude + (rand.Float64()-0.5)*2,
				Longitude: center.Longitude + (rand.Float64()-0.5)*2,
			},
			CurrentData: FloatReading{
				Temperature: 12.8 + rand.Float64()*8,
				Salinity:    34.9 + rand.Float64()*0.3,
				Pressure:    1500 + rand.Float64()*500,
				Depth:       1500,
			},
			Mission:        "Deep ocean monitoring",
			DeploymentDate: "2023-08-20",
		},
	}
}

func generateConditions(location string) *OceanConditions {
	return &OceanConditions{
		Location:  location,
		Timestamp: clock.Now(),
		Readings: []ConditionReading{
			{Parameter: "Temperature", Value: round1(25.4 + (rand.Float64()-0.5)*2), Unit: "°C", Status: "Normal"},
			{Parameter: "Salinity", Value: round1(35.2 + (rand.Float64()-0.5)*0.4), Unit: "PSU", Status: "Normal"},
			{Parameter: "Pressure", Value: round1(1013 + (rand.Float64()-0.5)*10), Unit: "hPa", Status: "Normal"},
			{Parameter: "Wind Speed", Value: round1(12.5 + (rand.Float64()-0.5)*5), Unit: "m/s", Status: "Moderate"},
			{Parameter: "Wave Height", Value: round1(1.8 + (rand.Float64()-0.5)*0.8), Unit: "m", Status: "Calm"},
		},
	}
}

func generateTrendSeries(location string) *TrendSeries {
	data := make([]TrendPoint, len(trendSeriesBase))
	copy(data, trendSeriesBase)
	return &TrendSeries{Location: location, Data: data}
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// CacheKey builds a deterministic cache key from an operation name and its
// parameters, so identical lookups share a cache row.
func CacheKey(op string, params ...any) string {
	key := op
	for _, p := range params {
		switch v := p.(type) {
		case float64:
			key += fmt.Sprintf("_%.4f", v)
		default:
			key += fmt.Sprintf("_%v", v)
		}
	}
	return key
}
