package markers

import "log/slog"

// LogRenderer is the production MapRenderer used when no map widget is
// attached: it logs the marker stream so the reconciliation remains
// observable.
type LogRenderer struct {
	Logger *slog.Logger
}

func (r *LogRenderer) AddMarker(m Marker) {
	r.Logger.Debug("marker added",
		"report_id", m.ReportID,
		"lat", m.Geo.Lat,
		"lon", m.Geo.Lon,
		"color", m.Style.Color,
		"radius", m.Style.Radius,
	)
}

func (r *LogRenderer) RemoveMarker(reportID int) {
	r.Logger.Debug("marker removed", "report_id", reportID)
}

// Recorder is a MapRenderer for tests. It records every add/remove request
// in order.
type Recorder struct {
	Added   []Marker
	Removed []int
}

func (r *Recorder) AddMarker(m Marker)        { r.Added = append(r.Added, m) }
func (r *Recorder) RemoveMarker(reportID int) { r.Removed = append(r.Removed, reportID) }
