// Package store owns the canonical report and social-signal collections.
// Stores are not safe for concurrent use on their own; the dashboard
// controller serializes every mutation entry point.
package store

import (
	"fmt"
	"sort"

	"github.com/golang/geo/s2"

	"github.com/oceanguardio/oceanguard/internal/domain"
)

const earthRadiusKm = 6371.0

// ErrNotFound is returned when an operation names a report id that is not
// in the store.
var ErrNotFound = fmt.Errorf("store: report not found")

// ReportFilter selects a subset of reports for listing.
type ReportFilter string

const (
	FilterAll          ReportFilter = "all"
	FilterVerifiedOnly ReportFilter = "verified"
	FilterPendingOnly  ReportFilter = "pending"
	FilterHighPriority ReportFilter = "high"
)

// ParseReportFilter maps a raw filter code to the closed set, falling back
// to FilterAll.
func ParseReportFilter(s string) ReportFilter {
	switch ReportFilter(s) {
	case FilterVerifiedOnly, FilterPendingOnly, FilterHighPriority:
		return ReportFilter(s)
	default:
		return FilterAll
	}
}

// ReportStore is the canonical ordered collection of hazard reports.
// Reports are kept newest-first; they are never deleted.
type ReportStore struct {
	reports   []domain.Report
	listeners []func()
}

// NewReportStore creates an empty report store.
func NewReportStore() *ReportStore {
	return &ReportStore{}
}

// OnChange registers a listener invoked exactly once after every mutation
// that changes store contents.
func (s *ReportStore) OnChange(fn func()) {
	s.listeners = append(s.listeners, fn)
}

func (s *ReportStore) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}

// Add inserts a new report from a draft. It assigns the next integer id
// (max existing id + 1, or 1 when empty), stamps the creation time,
// defaults the reporter to an anonymous identity, and prepends so
// newest-first iteration needs no re-sort. Listeners fire once per call.
func (s *ReportStore) Add(draft domain.ReportDraft) domain.Report {
	report := domain.Report{
		ID:          s.nextID(),
		Type:        draft.Type,
		Severity:    draft.Severity,
		Location:    draft.Location,
		Description: draft.Description,
		Timestamp:   clockNow(),
		Verified:    draft.Verified,
		Reporter:    draft.Reporter,
		Contact:     draft.Contact,
		Geo:         draft.Geo,
		Images:      draft.Images,
	}
	if report.Reporter == "" {
		report.Reporter = "Anonymous User"
	}
	if report.Contact == "" {
		report.Contact = "N/A"
	}

	s.reports = append([]domain.Report{report}, s.reports...)
	s.notify()
	return report
}

// Load replaces the store contents with pre-built reports, used to hydrate
// the startup fixtures. Ids must already be unique. Listeners fire once.
func (s *ReportStore) Load(reports []domain.Report) {
	s.reports = append([]domain.Report(nil), reports...)
	s.notify()
}

// Verify transitions a report's verification flag false→true. The
// transition never reverses; verifying an already-verified report is a
// no-op. Returns ErrNotFound for an unknown id. The caller of this
// operation is outside the core (an external moderation actor).
func (s *ReportStore) Verify(id int) error {
	for i := range s.reports {
		if s.reports[i].ID != id {
			continue
		}
		if !s.reports[i].Verified {
			s.reports[i].Verified = true
			s.notify()
		}
		return nil
	}
	return fmt.Errorf("verify report %d: %w", id, ErrNotFound)
}

// Get returns the report with the given id.
func (s *ReportStore) Get(id int) (domain.Report, error) {
	for _, r := range s.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Report{}, fmt.Errorf("get report %d: %w", id, ErrNotFound)
}

// List returns a fresh slice of reports matching the filter, sorted
// descending by timestamp. Ties keep original insertion order. The call is
// a pure projection: it never mutates the canonical collection.
func (s *ReportStore) List(filter ReportFilter) []domain.Report {
	out := make([]domain.Report, 0, len(s.reports))
	for _, r := range s.reports {
		switch filter {
		case FilterVerifiedOnly:
			if !r.Verified {
				continue
			}
		case FilterPendingOnly:
			if r.Verified {
				continue
			}
		case FilterHighPriority:
			if !r.Severity.HighPriority() {
				continue
			}
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// Snapshot returns a copy of the full collection in storage order
// (newest-first by insertion) for derived consumers.
func (s *ReportStore) Snapshot() []domain.Report {
	return append([]domain.Report(nil), s.reports...)
}

// Len returns the number of reports in the store.
func (s *ReportStore) Len() int {
	return len(s.reports)
}

// Nearby returns the reports within radiusKm of the given point, using
// great-circle distance on the unit sphere.
func (s *ReportStore) Nearby(center domain.Geo, radiusKm float64) []domain.Report {
	from := s2.LatLngFromDegrees(center.Lat, center.Lon)
	var out []domain.Report
	for _, r := range s.reports {
		to := s2.LatLngFromDegrees(r.Geo.Lat, r.Geo.Lon)
		if from.Distance(to).Radians()*earthRadiusKm <= radiusKm {
			out = append(out, r)
		}
	}
	return out
}

func (s *ReportStore) nextID() int {
	maxID := 0
	for _, r := range s.reports {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	return maxID + 1
}
