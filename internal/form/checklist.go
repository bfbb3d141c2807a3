package form

import (
	"fmt"
	"math"
	"strings"
)

// ChecklistFields is the fixed 33-field checklist the admin console scores
// submissions against. The set and order are part of the admin contract and
// do not track schema additions.
var ChecklistFields = []string{
	"contactFirstName", "contactLastName", "contactEmail",
	"contactPhone", "contactRole", "contactTimezone", "preferredContact",
	"podcastName", "podcastDescription", "podcastStatus", "brandStatus",
	"podcastGenre", "podcastFormat", "targetAudience",
	"hasBrandGuidelines", "brandColors", "brandFonts", "brandVoice",
	"inspoPodcasts", "inspoBrands",
	"needsMusic", "musicVibe",
	"socialWebsite", "socialInstagram",
	"recordingLocation", "episodeFrequency", "episodeLength", "hostsInfo",
	"hasGuests", "isVideo",
	"launchEpisodes", "teaserIdeas",
	"goals",
}

// Completeness scores a submission's field map: the rounded percentage of
// checklist fields holding a non-empty trimmed value.
func Completeness(values map[string]interface{}) int {
	filled := 0
	for _, name := range ChecklistFields {
		v, ok := values[name]
		if !ok || v == nil {
			continue
		}
		if b, isBool := v.(bool); isBool {
			if b {
				filled++
			}
			continue
		}
		if strings.TrimSpace(fmt.Sprintf("%v", v)) != "" {
			filled++
		}
	}
	return int(math.Round(float64(filled) / float64(len(ChecklistFields)) * 100))
}

// CompletenessTier buckets a score for the admin list view.
func CompletenessTier(score int) string {
	switch {
	case score >= 80:
		return "good"
	case score >= 50:
		return "partial"
	default:
		return "low"
	}
}
