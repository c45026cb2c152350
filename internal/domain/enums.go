package domain

// HazardType is the closed enumeration of reportable hazard categories.
type HazardType string

const (
	HazardOilSpill          HazardType = "oil-spill"
	HazardPlasticWaste      HazardType = "plastic-waste"
	HazardChemicalPollution HazardType = "chemical-pollution"
	HazardMarineLife        HazardType = "marine-life"
	HazardAlgaeBloom        HazardType = "algae-bloom"
	HazardDebris            HazardType = "debris"
)

// HazardTypes lists all known hazard categories in display order.
var HazardTypes = []HazardType{
	HazardOilSpill,
	HazardPlasticWaste,
	HazardChemicalPollution,
	HazardMarineLife,
	HazardAlgaeBloom,
	HazardDebris,
}

// Known reports whether t is one of the closed hazard categories.
func (t HazardType) Known() bool {
	switch t {
	case HazardOilSpill, HazardPlasticWaste, HazardChemicalPollution,
		HazardMarineLife, HazardAlgaeBloom, HazardDebris:
		return true
	default:
		return false
	}
}

// Severity is the ordered four-level hazard scale.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// ParseSeverity maps a raw severity code to the closed scale. Unrecognized
// values fall back to medium.
func ParseSeverity(s string) Severity {
	switch Severity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return Severity(s)
	default:
		return SeverityMedium
	}
}

// Rank returns the position of s on the ordered scale, with low at 0.
// Unrecognized values rank as medium.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 0
	case SeverityHigh:
		return 2
	case SeverityCritical:
		return 3
	default:
		return 1
	}
}

// HighPriority reports whether s is high or critical, the threshold for
// active-hazard counting and pulsing map markers.
func (s Severity) HighPriority() bool {
	return s == SeverityHigh || s == SeverityCritical
}

// Sentiment classifies the tone of a social post.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// ParseSentiment maps a raw sentiment code to the closed set, falling back
// to neutral.
func ParseSentiment(s string) Sentiment {
	switch Sentiment(s) {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return Sentiment(s)
	default:
		return SentimentNeutral
	}
}

// Platform identifies the social network a post originated from.
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
)

// Icon returns the glyph shown next to the platform badge. Unknown
// platforms get the generic globe.
func (p Platform) Icon() string {
	switch p {
	case PlatformTwitter:
		return "🐦"
	case PlatformInstagram:
		return "📸"
	case PlatformFacebook:
		return "👥"
	case PlatformYouTube:
		return "📺"
	case PlatformTikTok:
		return "🎵"
	default:
		return "🌐"
	}
}
