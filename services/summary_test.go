package services

import (
	"encoding/json"
	"flight-parser/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColumnsFound(t *testing.T) {
	req := require.New(t)

	found := ColumnsFound([]string{"OSD.longitude", "time", "OSD.Altitude", "battery", "OSD.latitude", "gimbal.pitch"})

	req.Equal([]string{"altitude", "battery", "latitude", "longitude"}, found)
	req.Empty(ColumnsFound(nil))
}

func TestSummarize(t *testing.T) {
	t.Run("text log only counts rows", func(t *testing.T) {
		req := require.New(t)
		summary := Summarize(domain.FlightLog{Lines: []domain.TextLine{{Line: 1}, {Line: 2}}})
		req.Equal(domain.Summary{Rows: 2}, summary)
	})

	t.Run("tabular log aggregates known columns", func(t *testing.T) {
		req := require.New(t)
		flightLog := domain.FlightLog{
			Columns: []string{"OSD.altitude", "OSD.latitude", "OSD.longitude", "BATTERY.battery", "OSD.flycState"},
			Rows: []map[string]any{
				{"OSD.altitude": json.Number("0"), "OSD.latitude": "", "OSD.longitude": 2.0, "BATTERY.battery": 100, "OSD.flycState": "Motors_Started"},
				{"OSD.altitude": json.Number("30"), "OSD.latitude": 48.85, "OSD.longitude": 2.35, "BATTERY.battery": 90},
				{"OSD.altitude": "60", "OSD.latitude": 48.86, "OSD.longitude": "2.36", "BATTERY.battery": 80},
				{"OSD.altitude": nil, "OSD.latitude": 48.87, "OSD.longitude": nil, "BATTERY.battery": "n/a"},
			},
		}

		summary := Summarize(flightLog)

		req.Equal(4, summary.Rows)
		req.Len(summary.Metrics, 4)
		req.Equal(domain.MetricStats{Min: 0, Max: 60, Mean: 30, Count: 3}, summary.Metrics["altitude"])
		req.Equal(domain.MetricStats{Min: 80, Max: 100, Mean: 90, Count: 3}, summary.Metrics["battery"])
		req.Equal(3, summary.Metrics["latitude"].Count)
		req.NotContains(summary.Metrics, "velocity")
		req.Equal(&domain.Coordinate{Latitude: 48.85, Longitude: 2.35}, summary.Start)
		req.Equal(&domain.Coordinate{Latitude: 48.86, Longitude: 2.36}, summary.End)
	})

	t.Run("no telemetry columns", func(t *testing.T) {
		req := require.New(t)
		summary := Summarize(domain.FlightLog{Columns: []string{"time"}, Rows: []map[string]any{{"time": 1}}})
		req.Equal(1, summary.Rows)
		req.Nil(summary.Metrics)
		req.Nil(summary.Start)
	})
}
