package form

import (
	"fmt"
	"strings"
)

// ReviewField is one editable row of the admin projection.
type ReviewField struct {
	Label     string `json:"label"`
	Name      string `json:"name"`
	Multiline bool   `json:"multiline"`
}

// ReviewGroup is a topic heading with its editable fields.
type ReviewGroup struct {
	Title  string        `json:"title"`
	Fields []ReviewField `json:"fields"`
}

// ReviewGroups is the admin console's grouped, editable projection of a
// submission. It mirrors the summary grouping but exposes raw coded values
// rather than human labels, since the rows are edit targets.
var ReviewGroups = []ReviewGroup{
	{Title: "Contact Information", Fields: []ReviewField{
		{Label: "First Name", Name: "contactFirstName"},
		{Label: "Last Name", Name: "contactLastName"},
		{Label: "Email", Name: "contactEmail"},
		{Label: "Phone", Name: "contactPhone"},
		{Label: "Role", Name: "contactRole"},
		{Label: "Timezone", Name: "contactTimezone"},
		{Label: "Preferred Contact", Name: "preferredContact"},
	}},
	{Title: "Podcast Basics", Fields: []ReviewField{
		{Label: "Podcast Name", Name: "podcastName"},
		{Label: "Description", Name: "podcastDescription", Multiline: true},
		{Label: "Status", Name: "podcastStatus"},
		{Label: "Brand Status", Name: "brandStatus"},
		{Label: "Genre", Name: "podcastGenre"},
		{Label: "Format", Name: "podcastFormat"},
		{Label: "Target Audience", Name: "targetAudience", Multiline: true},
	}},
	{Title: "Branding", Fields: []ReviewField{
		{Label: "Has Guidelines", Name: "hasBrandGuidelines"},
		{Label: "Brand Colors", Name: "brandColors"},
		{Label: "Fonts", Name: "brandFonts"},
		{Label: "Voice / Tone", Name: "brandVoice", Multiline: true},
	}},
	{Title: "Inspiration", Fields: []ReviewField{
		{Label: "Podcasts Admired", Name: "inspoPodcasts", Multiline: true},
		{Label: "Brands Admired", Name: "inspoBrands", Multiline: true},
		{Label: "Visual Notes", Name: "inspoNotes", Multiline: true},
	}},
	{Title: "Music & Audio", Fields: []ReviewField{
		{Label: "Needs Music", Name: "needsMusic"},
		{Label: "Music Vibe", Name: "musicVibe", Multiline: true},
		{Label: "Music References", Name: "musicReferences", Multiline: true},
		{Label: "Sound Effects", Name: "wantsSFX"},
	}},
	{Title: "Social Media & Web", Fields: []ReviewField{
		{Label: "Website", Name: "socialWebsite"},
		{Label: "Instagram", Name: "socialInstagram"},
		{Label: "X (Twitter)", Name: "socialTwitter"},
		{Label: "TikTok", Name: "socialTiktok"},
		{Label: "YouTube", Name: "socialYoutube"},
		{Label: "LinkedIn", Name: "socialLinkedin"},
		{Label: "Social Management", Name: "manageSocial"},
		{Label: "Short-form Clips", Name: "wantsClips"},
	}},
	{Title: "Recording & Logistics", Fields: []ReviewField{
		{Label: "Location", Name: "recordingLocation"},
		{Label: "Address", Name: "locationAddress"},
		{Label: "Frequency", Name: "episodeFrequency"},
		{Label: "Episode Length", Name: "episodeLength"},
		{Label: "Host(s)", Name: "hostsInfo", Multiline: true},
		{Label: "Guests", Name: "hasGuests"},
		{Label: "Video", Name: "isVideo"},
		{Label: "Launch Date", Name: "launchDate"},
	}},
	{Title: "Marketing & Launch", Fields: []ReviewField{
		{Label: "Launch Episodes", Name: "launchEpisodes"},
		{Label: "Teaser Ideas", Name: "teaserIdeas", Multiline: true},
		{Label: "Marketing Notes", Name: "marketingNotes", Multiline: true},
		{Label: "Goals", Name: "goals", Multiline: true},
	}},
	{Title: "Additional Notes", Fields: []ReviewField{
		{Label: "Notes", Name: "anythingElse", Multiline: true},
	}},
}

// ReviewValue renders a stored field value for the admin edit projection.
func ReviewValue(values map[string]interface{}, name string) string {
	v, ok := values[name]
	if !ok || v == nil {
		return ""
	}
	if s, isStr := v.(string); isStr {
		return s
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v))
}
