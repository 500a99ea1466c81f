package domain

const (
	ColumnAltitude  = "altitude"
	ColumnVelocity  = "velocity"
	ColumnBattery   = "battery"
	ColumnLatitude  = "latitude"
	ColumnLongitude = "longitude"
)

// TelemetryColumns are the columns the summary knows how to aggregate, in output order.
var TelemetryColumns = []string{ColumnAltitude, ColumnVelocity, ColumnBattery, ColumnLatitude, ColumnLongitude}

type MetricStats struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Summary struct {
	Rows    int                    `json:"rows"`
	Metrics map[string]MetricStats `json:"metrics,omitempty"`
	Start   *Coordinate            `json:"start,omitempty"`
	End     *Coordinate            `json:"end,omitempty"`
}
