package dashboard

import (
	"time"

	"github.com/oceanguardio/oceanguard/internal/domain"
)

// SampleReports returns the startup hazard fixtures, a cross-section of the
// Chennai coastal region with timestamps spread over the five hours before
// now.
func SampleReports(now time.Time) []domain.Report {
	return []domain.Report{
		{
			ID:          1,
			Type:        domain.HazardOilSpill,
			Severity:    domain.SeverityHigh,
			Location:    "Bay of Bengal, 15km from Chennai Port",
			Description: "Large oil spill detected affecting approximately 2km of coastline. Immediate response team dispatched. Wildlife rescue operations underway.",
			Timestamp:   now.Add(-1 * time.Hour),
			Verified:    true,
			Reporter:    "Coast Guard Patrol",
			Contact:     "coastguard@marine.gov.in",
			Geo:         domain.Geo{Lat: 13.0827, Lon: 80.2707},
			Images:      2,
		},
		{
			ID:          2,
			Type:        domain.HazardPlasticWaste,
			Severity:    domain.SeverityMedium,
			Location:    "Marina Beach, Chennai",
			Description: "Significant plastic debris accumulation after recent monsoon. Beach cleanup operations scheduled. Community volunteers needed.",
			Timestamp:   now.Add(-2 * time.Hour),
			Verified:    true,
			Reporter:    "Environmental NGO",
			Contact:     "cleanup@oceancare.org",
			Geo:         domain.Geo{Lat: 12.9716, Lon: 80.2341},
			Images:      5,
		},
		{
			ID:          3,
			Type:        domain.HazardAlgaeBloom,
			Severity:    domain.SeverityLow,
			Location:    "Pulicat Lake",
			Description: "Unusual algae bloom detected with water discoloration. Water quality testing in progress. Local fishing temporarily suspended.",
			Timestamp:   now.Add(-3 * time.Hour),
			Verified:    false,
			Reporter:    "Local Fisherman",
			Contact:     "fisher@local.com",
			Geo:         domain.Geo{Lat: 13.1500, Lon: 80.1800},
			Images:      1,
		},
		{
			ID:          4,
			Type:        domain.HazardChemicalPollution,
			Severity:    domain.SeverityCritical,
			Location:    "Ennore Creek",
			Description: "Suspected industrial chemical discharge with fish kill reported. Environmental investigation team deployed. Area cordoned off.",
			Timestamp:   now.Add(-4 * time.Hour),
			Verified:    true,
			Reporter:    "Environmental Protection Agency",
			Contact:     "emergency@epa.gov.in",
			Geo:         domain.Geo{Lat: 12.8500, Lon: 80.3200},
			Images:      3,
		},
		{
			ID:          5,
			Type:        domain.HazardMarineLife,
			Severity:    domain.SeverityHigh,
			Location:    "Covelong Beach",
			Description: "Mass turtle nesting disruption and unusual marine behavior observed. Marine biologists investigating possible causes.",
			Timestamp:   now.Add(-5 * time.Hour),
			Verified:    true,
			Reporter:    "Marine Research Institute",
			Contact:     "research@marine.ac.in",
			Geo:         domain.Geo{Lat: 13.2000, Lon: 80.1000},
			Images:      4,
		},
	}
}

// SamplePosts returns the startup social-feed fixtures.
func SamplePosts(now time.Time) []domain.SocialPost {
	return []domain.SocialPost{
		{
			ID:         1,
			Username:   "MarineExplorer_IN",
			Content:    "URGENT: Massive oil spill spotted near Chennai port! This is devastating for marine life. Cleanup crews needed immediately! #OceanPollution #SaveOurSeas #ChennaiPort #MarineEmergency",
			Timestamp:  now.Add(-30 * time.Minute),
			Sentiment:  domain.SentimentNegative,
			Platform:   domain.PlatformTwitter,
			Engagement: 1247,
			Verified:   true,
		},
		{
			ID:         2,
			Username:   "EcoWarrior2024",
			Content:    "Amazing community spirit at Marina Beach cleanup today! 500+ volunteers collected 2 tons of plastic waste. Together we can heal our oceans 🌊💙 #CleanOcean #CommunityAction #ZeroWaste",
			Timestamp:  now.Add(-1 * time.Hour),
			Sentiment:  domain.SentimentPositive,
			Platform:   domain.PlatformInstagram,
			Engagement: 892,
			Verified:   false,
		},
		{
			ID:         3,
			Username:   "FishermanDaily",
			Content:    "Water color changed drastically near Pulicat Lake. Fish behavior very unusual - they seem distressed. Is this climate change effect or something else? Need experts to investigate 🐟",
			Timestamp:  now.Add(-90 * time.Minute),
			Sentiment:  domain.SentimentNeutral,
			Platform:   domain.PlatformTwitter,
			Engagement: 234,
			Verified:   false,
		},
		{
			ID:         4,
			Username:   "CoastalGuardIndia",
			Content:    "Regular maritime patrol identified debris field 10km offshore. Monitoring situation closely. Citizens please report any unusual marine sightings to our emergency hotline.",
			Timestamp:  now.Add(-2 * time.Hour),
			Sentiment:  domain.SentimentNeutral,
			Platform:   domain.PlatformFacebook,
			Engagement: 567,
			Verified:   true,
		},
		{
			ID:         5,
			Username:   "OceanConservation",
			Content:    "New satellite data reveals alarming increase in Bay of Bengal pollution levels. Microplastics up 40% this year. We need immediate policy action! 📊 #DataScience #OceanHealth #PolicyChange",
			Timestamp:  now.Add(-150 * time.Minute),
			Sentiment:  domain.SentimentNegative,
			Platform:   domain.PlatformTwitter,
			Engagement: 1312,
			Verified:   true,
		},
	}
}
