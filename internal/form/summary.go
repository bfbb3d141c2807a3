// summary.go
//
// Podcast onboarding wizard for Straw Hut Media.
// Copyright (c) 2026 Straw Hut Media

package form

import "strings"

// Placeholder stands in for any absent value in summaries.
const Placeholder = "—"

// SummaryRow is one label/value pair of the review projection.
type SummaryRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SummaryGroup is a fixed heading with its rows.
type SummaryGroup struct {
	Title string       `json:"title"`
	Rows  []SummaryRow `json:"rows"`
}

// labelFor maps a coded value to its human label, falling back to the
// placeholder when unset and to the raw value when unmapped.
func (s *Session) labelFor(name string) string {
	v := s.StringValue(name)
	if v == "" {
		return Placeholder
	}
	if f := FieldByName(name); f != nil && f.Labels != nil {
		if label, ok := f.Labels[v]; ok {
			return label
		}
	}
	return v
}

// textOr returns the trimmed value or the placeholder.
func (s *Session) textOr(name string) string {
	if v := s.StringValue(name); v != "" {
		return v
	}
	return Placeholder
}

// fileRow appends a comma-joined file-name row when the category is
// non-empty.
func (s *Session) fileRow(rows []SummaryRow, label string, cat Category) []SummaryRow {
	if names := s.FileNames(cat); len(names) > 0 {
		rows = append(rows, SummaryRow{Label: label, Value: strings.Join(names, ", ")})
	}
	return rows
}

// BuildSummary projects the current values into the grouped review list.
// Pure function of session state, recomputed every time the review section
// is shown.
func (s *Session) BuildSummary() []SummaryGroup {
	var groups []SummaryGroup

	name := strings.TrimSpace(s.StringValue("contactFirstName") + " " + s.StringValue("contactLastName"))
	if name == "" {
		name = Placeholder
	}
	groups = append(groups, SummaryGroup{Title: "Contact Information", Rows: []SummaryRow{
		{Label: "Name", Value: name},
		{Label: "Email", Value: s.textOr("contactEmail")},
		{Label: "Phone", Value: s.textOr("contactPhone")},
		{Label: "Role", Value: s.textOr("contactRole")},
		{Label: "Timezone", Value: s.textOr("contactTimezone")},
		{Label: "Preferred Contact", Value: s.textOr("preferredContact")},
	}})

	basics := []SummaryRow{
		{Label: "Podcast Name", Value: s.textOr("podcastName")},
		{Label: "Description", Value: s.textOr("podcastDescription")},
		{Label: "Status", Value: s.labelFor("podcastStatus")},
		{Label: "Brand", Value: s.labelFor("brandStatus")},
	}
	if s.StringValue("podcastStatus") == "takeover" {
		basics = append(basics, SummaryRow{Label: "Existing URL", Value: s.textOr("existingPodcastUrl")})
	}
	basics = append(basics,
		SummaryRow{Label: "Genre", Value: s.textOr("podcastGenre")},
		SummaryRow{Label: "Format", Value: s.textOr("podcastFormat")},
		SummaryRow{Label: "Target Audience", Value: s.textOr("targetAudience")},
	)
	groups = append(groups, SummaryGroup{Title: "Podcast Basics", Rows: basics})

	branding := []SummaryRow{
		{Label: "Has Guidelines", Value: s.labelFor("hasBrandGuidelines")},
		{Label: "Brand Colors", Value: s.textOr("brandColors")},
		{Label: "Fonts", Value: s.textOr("brandFonts")},
		{Label: "Voice / Tone", Value: s.textOr("brandVoice")},
	}
	branding = s.fileRow(branding, "Guideline Files", CategoryBrand)
	branding = s.fileRow(branding, "Logo Files", CategoryLogo)
	groups = append(groups, SummaryGroup{Title: "Branding", Rows: branding})

	inspo := []SummaryRow{}
	inspo = s.fileRow(inspo, "Images", CategoryInspo)
	inspo = append(inspo,
		SummaryRow{Label: "Podcasts Admired", Value: s.textOr("inspoPodcasts")},
		SummaryRow{Label: "Brands Admired", Value: s.textOr("inspoBrands")},
		SummaryRow{Label: "Visual Notes", Value: s.textOr("inspoNotes")},
	)
	groups = append(groups, SummaryGroup{Title: "Inspiration", Rows: inspo})

	music := []SummaryRow{
		{Label: "Needs Music", Value: s.labelFor("needsMusic")},
		{Label: "Music Vibe", Value: s.textOr("musicVibe")},
		{Label: "Music References", Value: s.textOr("musicReferences")},
		{Label: "Sound Effects", Value: s.labelFor("wantsSFX")},
	}
	music = s.fileRow(music, "Audio Files", CategoryMusic)
	groups = append(groups, SummaryGroup{Title: "Music & Audio", Rows: music})

	groups = append(groups, SummaryGroup{Title: "Social Media & Web", Rows: []SummaryRow{
		{Label: "Website", Value: s.textOr("socialWebsite")},
		{Label: "Instagram", Value: s.textOr("socialInstagram")},
		{Label: "X (Twitter)", Value: s.textOr("socialTwitter")},
		{Label: "TikTok", Value: s.textOr("socialTiktok")},
		{Label: "YouTube", Value: s.textOr("socialYoutube")},
		{Label: "LinkedIn", Value: s.textOr("socialLinkedin")},
		{Label: "Social Mgmt", Value: s.labelFor("manageSocial")},
		{Label: "Short-form Clips", Value: s.labelFor("wantsClips")},
	}})

	recording := []SummaryRow{
		{Label: "Location", Value: s.labelFor("recordingLocation")},
	}
	if s.StringValue("recordingLocation") == "client-location" {
		recording = append(recording, SummaryRow{Label: "Address", Value: s.textOr("locationAddress")})
	}
	recording = append(recording,
		SummaryRow{Label: "Frequency", Value: s.textOr("episodeFrequency")},
		SummaryRow{Label: "Episode Length", Value: s.textOr("episodeLength")},
		SummaryRow{Label: "Host(s)", Value: s.textOr("hostsInfo")},
		SummaryRow{Label: "Guests", Value: s.labelFor("hasGuests")},
		SummaryRow{Label: "Video", Value: s.labelFor("isVideo")},
		SummaryRow{Label: "Launch Date", Value: s.textOr("launchDate")},
	)
	groups = append(groups, SummaryGroup{Title: "Recording & Logistics", Rows: recording})

	platforms := Placeholder
	if list := s.ListValue("platforms"); len(list) > 0 {
		platforms = strings.Join(list, ", ")
	}
	groups = append(groups, SummaryGroup{Title: "Distribution & Monetization", Rows: []SummaryRow{
		{Label: "Platforms", Value: platforms},
		{Label: "Monetization", Value: s.labelFor("wantsMonetization")},
		{Label: "Monetization Notes", Value: s.textOr("monetizationNotes")},
		{Label: "Podcast Website", Value: s.labelFor("wantsWebsite")},
	}})

	groups = append(groups, SummaryGroup{Title: "Marketing & Launch", Rows: []SummaryRow{
		{Label: "Launch Episodes", Value: s.labelFor("launchEpisodes")},
		{Label: "Trailer", Value: s.labelFor("wantsTrailer")},
		{Label: "Press Kit", Value: s.labelFor("wantsPressKit")},
		{Label: "Teaser Ideas", Value: s.textOr("teaserIdeas")},
		{Label: "Marketing Notes", Value: s.textOr("marketingNotes")},
		{Label: "Goals", Value: s.textOr("goals")},
	}})

	groups = append(groups, SummaryGroup{Title: "Additional Notes", Rows: []SummaryRow{
		{Label: "Notes", Value: s.textOr("anythingElse")},
	}})

	return groups
}
