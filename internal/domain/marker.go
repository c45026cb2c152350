package domain

// MarkerStyle describes how a hazard marker is drawn on the map layer.
type MarkerStyle struct {
	Color   string `json:"color"`
	Radius  int    `json:"radius"`
	Pulsing bool   `json:"pulsing"`
}

// StyleFor returns the marker style for a severity level. Unrecognized
// severities use the medium mapping; high and critical markers pulse.
func StyleFor(s Severity) MarkerStyle {
	switch s {
	case SeverityLow:
		return MarkerStyle{Color: "#059669", Radius: 8}
	case SeverityHigh:
		return MarkerStyle{Color: "#ea580c", Radius: 16, Pulsing: true}
	case SeverityCritical:
		return MarkerStyle{Color: "#dc2626", Radius: 20, Pulsing: true}
	default:
		return MarkerStyle{Color: "#d97706", Radius: 12}
	}
}

// HeatWeight returns the relative heatmap intensity for a severity level,
// with unrecognized severities weighing as medium.
func HeatWeight(s Severity) float64 {
	switch s {
	case SeverityLow:
		return 0.2
	case SeverityHigh:
		return 0.7
	case SeverityCritical:
		return 1.0
	default:
		return 0.4
	}
}
