package domain

import "time"

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Report is a user- or simulator-submitted hazard observation. The id is
// unique within the report store and assigned on insertion; coordinates are
// always present once a report exists.
type Report struct {
	ID          int        `json:"id"`
	Type        HazardType `json:"type"`
	Severity    Severity   `json:"severity"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	Timestamp   time.Time  `json:"timestamp"`
	Verified    bool       `json:"verified"`
	Reporter    string     `json:"reporter"`
	Contact     string     `json:"contact"`
	Geo         Geo        `json:"geo"`
	Images      int        `json:"images,omitempty"`
}

// ReportDraft carries the caller-supplied fields of a new report. The store
// fills in id, timestamp, and defaults for the rest.
type ReportDraft struct {
	Type        HazardType
	Severity    Severity
	Location    string
	Description string
	Reporter    string
	Contact     string
	Geo         Geo
	Images      int
	Verified    bool
}

// SocialPost is an immutable social-media signal. Never deleted.
type SocialPost struct {
	ID         int       `json:"id"`
	Username   string    `json:"username"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Sentiment  Sentiment `json:"sentiment"`
	Platform   Platform  `json:"platform"`
	Engagement int       `json:"engagement"`
	Verified   bool      `json:"verified"`
}

// PostDraft carries the caller-supplied fields of a new social post.
type PostDraft struct {
	Username   string
	Content    string
	Sentiment  Sentiment
	Platform   Platform
	Engagement int
	Verified   bool
}

// Stats is the aggregate dashboard counters value object. Coverage is a
// percentage clamped to [0,100].
type Stats struct {
	TotalReports    int `json:"totalReports"`
	ActiveHazards   int `json:"activeHazards"`
	VerifiedReports int `json:"verifiedReports"`
	SocialMentions  int `json:"socialMentions"`
	ActiveUsers     int `json:"activeUsers"`
	Coverage        int `json:"coverage"`
}

// Notification is an ephemeral user-facing message. It auto-expires after a
// fixed delay unless dismissed earlier.
type Notification struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Category string `json:"category"`
}

// User is the authenticated identity held in session state.
type User struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	Avatar   string    `json:"avatar,omitempty"`
	JoinedAt time.Time `json:"joinedAt"`
}
