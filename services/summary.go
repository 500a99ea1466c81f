package services

import (
	"encoding/json"
	"flight-parser/domain"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// telemetryColumn maps a decoder column onto a known telemetry name.
// "altitude", "Altitude" and "OSD.altitude" all map to "altitude".
func telemetryColumn(column string) (string, bool) {
	name := strings.ToLower(column)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name, lo.Contains(domain.TelemetryColumns, name)
}

// ColumnsFound lists the known telemetry columns present in columns, in canonical order.
func ColumnsFound(columns []string) []string {
	present := lo.FilterMap(columns, func(c string, _ int) (string, bool) {
		return telemetryColumn(c)
	})
	return lo.Filter(domain.TelemetryColumns, func(c string, _ int) bool {
		return lo.Contains(present, c)
	})
}

// Summarize aggregates the known telemetry columns of a flight log.
func Summarize(flightLog domain.FlightLog) domain.Summary {
	if flightLog.IsText() {
		return domain.Summary{Rows: len(flightLog.Lines)}
	}

	sources := make(map[string]string)
	for _, c := range flightLog.Columns {
		if name, ok := telemetryColumn(c); ok {
			if _, seen := sources[name]; !seen {
				sources[name] = c
			}
		}
	}

	summary := domain.Summary{Rows: len(flightLog.Rows)}
	metrics := make(map[string]domain.MetricStats)
	for name, column := range sources {
		values := lo.FilterMap(flightLog.Rows, func(row map[string]any, _ int) (float64, bool) {
			return toFloat(row[column])
		})
		if len(values) == 0 {
			continue
		}
		metrics[name] = domain.MetricStats{
			Min:   lo.Min(values),
			Max:   lo.Max(values),
			Mean:  lo.Sum(values) / float64(len(values)),
			Count: len(values),
		}
	}
	if len(metrics) > 0 {
		summary.Metrics = metrics
	}

	latColumn, hasLat := sources[domain.ColumnLatitude]
	lonColumn, hasLon := sources[domain.ColumnLongitude]
	if hasLat && hasLon {
		positions := lo.FilterMap(flightLog.Rows, func(row map[string]any, _ int) (domain.Coordinate, bool) {
			lat, okLat := toFloat(row[latColumn])
			lon, okLon := toFloat(row[lonColumn])
			return domain.Coordinate{Latitude: lat, Longitude: lon}, okLat && okLon
		})
		if len(positions) > 0 {
			summary.Start = lo.ToPtr(positions[0])
			summary.End = lo.ToPtr(positions[len(positions)-1])
		}
	}
	return summary
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
