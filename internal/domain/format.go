package domain

import (
	"fmt"
	"strings"
	"time"
)

// hazardLabels maps the closed hazard categories to display names.
var hazardLabels = map[HazardType]string{
	HazardOilSpill:          "Oil Spill",
	HazardPlasticWaste:      "Plastic Waste",
	HazardChemicalPollution: "Chemical Pollution",
	HazardMarineLife:        "Marine Life Issue",
	HazardAlgaeBloom:        "Algae Bloom",
	HazardDebris:            "Marine Debris",
}

// FormatHazardType returns the display name for a hazard category.
// Unknown codes are title-cased with dashes replaced by spaces, so new
// upstream categories degrade to a readable label.
func FormatHazardType(t HazardType) string {
	if label, ok := hazardLabels[t]; ok {
		return label
	}
	return titleCaseWords(strings.ReplaceAll(string(t), "-", " "))
}

// TimeAgo renders the elapsed time since ts using the coarsest non-zero
// unit: days, then hours, then minutes, then "Just now". The unit name is
// pluralized when the count exceeds one.
func TimeAgo(ts time.Time) string {
	elapsed := clock.Now().Sub(ts)

	if days := int(elapsed.Hours() / 24); days >= 1 {
		return pluralize(days, "day")
	}
	if hours := int(elapsed.Hours()); hours >= 1 {
		return pluralize(hours, "hour")
	}
	if minutes := int(elapsed.Minutes()); minutes >= 1 {
		return pluralize(minutes, "minute")
	}
	return "Just now"
}

func pluralize(n int, unit string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss ago", n, unit)
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}

// titleCaseWords capitalizes the first letter of each space-separated word.
func titleCaseWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
