// Package markers keeps a map view's marker layer reconciled against the
// canonical report collection. The marker set is derived state keyed by
// report id; it must never become the source of truth.
package markers

import (
	"sort"
	"strings"

	"github.com/oceanguardio/oceanguard/internal/domain"
)

// Marker is one rendered hazard position with its detail payload.
type Marker struct {
	ReportID int                `json:"reportId"`
	Geo      domain.Geo         `json:"geo"`
	Style    domain.MarkerStyle `json:"style"`
	Detail   Detail             `json:"detail"`
}

// Detail is the popup payload shown when a marker is clicked. Clicking is a
// read-only query; it mutates nothing.
type Detail struct {
	HazardLabel   string `json:"hazardLabel"`
	SeverityBadge string `json:"severityBadge"`
	TimeAgo       string `json:"timeAgo"`
	Reporter      string `json:"reporter"`
	Verified      bool   `json:"verified"`
	Description   string `json:"description"`
}

// MapRenderer consumes the add/remove stream produced by reconciliation.
// Implementations adapt a concrete map widget; the synchronizer stays
// agnostic of how markers are drawn.
type MapRenderer interface {
	AddMarker(m Marker)
	RemoveMarker(reportID int)
}

// Synchronizer reconciles the renderer's marker layer with the report
// store: after every Sync exactly one marker exists per report in the
// collection, none for reports no longer present, and re-running Sync with
// the same input changes nothing.
type Synchronizer struct {
	renderer MapRenderer
	present  map[int]Marker
}

// New creates a synchronizer driving the given renderer.
func New(renderer MapRenderer) *Synchronizer {
	return &Synchronizer{
		renderer: renderer,
		present:  make(map[int]Marker),
	}
}

// Sync reconciles against the current report collection. Reports are never
// deleted in practice, so additions dominate, but removal is handled all
// the same.
func (s *Synchronizer) Sync(reports []domain.Report) {
	want := make(map[int]domain.Report, len(reports))
	for _, r := range reports {
		want[r.ID] = r
	}

	for id := range s.present {
		if _, ok := want[id]; !ok {
			delete(s.present, id)
			s.renderer.RemoveMarker(id)
		}
	}

	for id, r := range want {
		if _, ok := s.present[id]; ok {
			continue
		}
		m := Build(r)
		s.present[id] = m
		s.renderer.AddMarker(m)
	}
}

// Build assembles the marker for a report: severity-derived style plus the
// formatted detail payload.
func Build(r domain.Report) Marker {
	return Marker{
		ReportID: r.ID,
		Geo:      r.Geo,
		Style:    domain.StyleFor(r.Severity),
		Detail: Detail{
			HazardLabel:   domain.FormatHazardType(r.Type),
			SeverityBadge: strings.ToUpper(string(r.Severity)),
			TimeAgo:       domain.TimeAgo(r.Timestamp),
			Reporter:      r.Reporter,
			Verified:      r.Verified,
			Description:   r.Description,
		},
	}
}

// Marker returns the marker currently present for a report id.
func (s *Synchronizer) Marker(reportID int) (Marker, bool) {
	m, ok := s.present[reportID]
	return m, ok
}

// Markers returns the present markers ordered by report id.
func (s *Synchronizer) Markers() []Marker {
	out := make([]Marker, 0, len(s.present))
	for _, m := range s.present {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReportID < out[j].ReportID })
	return out
}

// Len returns the number of present markers.
func (s *Synchronizer) Len() int {
	return len(s.present)
}
