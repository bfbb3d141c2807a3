// schema.go
//
// Podcast onboarding wizard for Straw Hut Media.
// Copyright (c) 2026 Straw Hut Media

package form

// TotalSections is fixed at build time. Section 9 is the review step where
// the submit control replaces the next control.
const TotalSections = 9

// DefaultInspoLimit caps the inspiration upload category. The other
// categories are uncapped.
const DefaultInspoLimit = 10

// FieldKind classifies how a field is filled in and therefore how it is
// validated and counted toward section completion.
type FieldKind string

const (
	KindText          FieldKind = "text"
	KindTextarea      FieldKind = "textarea"
	KindEmail         FieldKind = "email"
	KindURL           FieldKind = "url"
	KindPhone         FieldKind = "tel"
	KindDate          FieldKind = "date"
	KindRadio         FieldKind = "radio"
	KindCheckbox      FieldKind = "checkbox"
	KindCheckboxGroup FieldKind = "checkbox-group"
	KindSelect        FieldKind = "select"
)

// Category names an upload bucket.
type Category string

const (
	CategoryBrand Category = "brand"
	CategoryInspo Category = "inspo"
	CategoryLogo  Category = "logo"
	CategoryMusic Category = "music"
)

// Categories lists every upload bucket in display order.
var Categories = []Category{CategoryBrand, CategoryInspo, CategoryLogo, CategoryMusic}

// Condition reveals a field only while another field (always a radio group)
// holds one of the listed values.
type Condition struct {
	Field string
	AnyOf []string
}

// Field describes one wizard input.
type Field struct {
	Name        string
	Label       string
	Kind        FieldKind
	Section     int
	Required    bool
	Options     []string
	Labels      map[string]string // coded value -> human label for summaries
	VisibleWhen *Condition        // nil means always visible
}

// Section is one step of the wizard.
type Section struct {
	Number  int
	Title   string
	Uploads []Category // upload buckets whose contents count as section content
}

// Sections in wizard order. The upload mapping mirrors the form layout:
// branding holds the guideline and logo buckets, inspiration the image
// bucket, music the audio bucket.
var Sections = []Section{
	{Number: 1, Title: "Contact Information"},
	{Number: 2, Title: "Podcast Basics"},
	{Number: 3, Title: "Branding", Uploads: []Category{CategoryBrand, CategoryLogo}},
	{Number: 4, Title: "Inspiration", Uploads: []Category{CategoryInspo}},
	{Number: 5, Title: "Music & Audio", Uploads: []Category{CategoryMusic}},
	{Number: 6, Title: "Social Media & Web"},
	{Number: 7, Title: "Recording & Logistics"},
	{Number: 8, Title: "Marketing & Launch"},
	{Number: 9, Title: "Review & Submit"},
}

// ConfirmField is the review-step acknowledgement checkbox. It is excluded
// from section-completion checks and never stored in drafts or submissions.
const ConfirmField = "confirmSubmit"

// Fields is the full inventory, in form order.
var Fields = []Field{
	// Section 1 — Contact Information
	{Name: "contactFirstName", Label: "First Name", Kind: KindText, Section: 1, Required: true},
	{Name: "contactLastName", Label: "Last Name", Kind: KindText, Section: 1, Required: true},
	{Name: "contactEmail", Label: "Email", Kind: KindEmail, Section: 1, Required: true},
	{Name: "contactPhone", Label: "Phone", Kind: KindPhone, Section: 1},
	{Name: "contactRole", Label: "Role", Kind: KindText, Section: 1},
	{Name: "contactTimezone", Label: "Timezone", Kind: KindSelect, Section: 1},
	{Name: "preferredContact", Label: "Preferred Contact", Kind: KindSelect, Section: 1},

	// Section 2 — Podcast Basics
	{Name: "podcastName", Label: "Podcast Name", Kind: KindText, Section: 2, Required: true},
	{Name: "podcastDescription", Label: "Description", Kind: KindTextarea, Section: 2},
	{Name: "podcastStatus", Label: "Status", Kind: KindRadio, Section: 2, Required: true,
		Options: []string{"new", "takeover"},
		Labels:  map[string]string{"new": "New podcast", "takeover": "Taking over existing"}},
	{Name: "existingPodcastUrl", Label: "Existing URL", Kind: KindURL, Section: 2,
		VisibleWhen: &Condition{Field: "podcastStatus", AnyOf: []string{"takeover"}}},
	{Name: "brandStatus", Label: "Brand", Kind: KindRadio, Section: 2,
		Options: []string{"existing", "new"},
		Labels:  map[string]string{"existing": "Existing brand", "new": "New brand"}},
	{Name: "podcastGenre", Label: "Genre", Kind: KindText, Section: 2},
	{Name: "podcastFormat", Label: "Format", Kind: KindText, Section: 2},
	{Name: "targetAudience", Label: "Target Audience", Kind: KindTextarea, Section: 2},

	// Section 3 — Branding
	{Name: "hasBrandGuidelines", Label: "Has Guidelines", Kind: KindRadio, Section: 3,
		Options: []string{"yes", "no", "partial"},
		Labels:  map[string]string{"yes": "Yes", "no": "Need creation", "partial": "Partial"}},
	{Name: "brandColors", Label: "Brand Colors", Kind: KindText, Section: 3},
	{Name: "brandFonts", Label: "Fonts", Kind: KindText, Section: 3},
	{Name: "brandVoice", Label: "Voice / Tone", Kind: KindTextarea, Section: 3},

	// Section 4 — Inspiration
	{Name: "inspoPodcasts", Label: "Podcasts Admired", Kind: KindTextarea, Section: 4},
	{Name: "inspoBrands", Label: "Brands Admired", Kind: KindTextarea, Section: 4},
	{Name: "inspoNotes", Label: "Visual Notes", Kind: KindTextarea, Section: 4},

	// Section 5 — Music & Audio
	{Name: "needsMusic", Label: "Needs Music", Kind: KindRadio, Section: 5,
		Options: []string{"yes", "have-some", "no", "undecided"},
		Labels: map[string]string{"yes": "Create from scratch", "have-some": "Have some music",
			"no": "Handle separately", "undecided": "TBD"}},
	{Name: "musicVibe", Label: "Music Vibe", Kind: KindTextarea, Section: 5},
	{Name: "musicReferences", Label: "Music References", Kind: KindTextarea, Section: 5},
	{Name: "wantsSFX", Label: "Sound Effects", Kind: KindRadio, Section: 5,
		Options: []string{"yes", "minimal", "no", "undecided"},
		Labels:  map[string]string{"yes": "Yes", "minimal": "Minimal", "no": "No", "undecided": "TBD"}},

	// Section 6 — Social Media & Web
	{Name: "socialWebsite", Label: "Website", Kind: KindURL, Section: 6},
	{Name: "socialInstagram", Label: "Instagram", Kind: KindText, Section: 6},
	{Name: "socialTwitter", Label: "X (Twitter)", Kind: KindText, Section: 6},
	{Name: "socialTiktok", Label: "TikTok", Kind: KindText, Section: 6},
	{Name: "socialYoutube", Label: "YouTube", Kind: KindText, Section: 6},
	{Name: "socialLinkedin", Label: "LinkedIn", Kind: KindText, Section: 6},
	{Name: "manageSocial", Label: "Social Mgmt", Kind: KindRadio, Section: 6,
		Options: []string{"yes", "partial", "no"},
		Labels:  map[string]string{"yes": "Full management", "partial": "Create content only", "no": "Handle ourselves"}},
	{Name: "wantsClips", Label: "Short-form Clips", Kind: KindRadio, Section: 6,
		Options: []string{"yes", "no", "undecided"},
		Labels:  map[string]string{"yes": "Yes", "no": "No", "undecided": "TBD"}},

	// Section 7 — Recording & Logistics
	{Name: "recordingLocation", Label: "Location", Kind: KindRadio, Section: 7,
		Options: []string{"studio", "virtual", "client-location", "undecided"},
		Labels: map[string]string{"studio": "Straw Hut Studio", "virtual": "Virtual / Remote",
			"client-location": "Client location", "undecided": "TBD"}},
	{Name: "locationAddress", Label: "Address", Kind: KindText, Section: 7,
		VisibleWhen: &Condition{Field: "recordingLocation", AnyOf: []string{"client-location"}}},
	{Name: "episodeFrequency", Label: "Frequency", Kind: KindSelect, Section: 7},
	{Name: "episodeLength", Label: "Episode Length", Kind: KindText, Section: 7},
	{Name: "hostsInfo", Label: "Host(s)", Kind: KindTextarea, Section: 7},
	{Name: "hasGuests", Label: "Guests", Kind: KindRadio, Section: 7,
		Options: []string{"yes", "sometimes", "no", "undecided"},
		Labels:  map[string]string{"yes": "Yes, regularly", "sometimes": "Sometimes", "no": "No", "undecided": "TBD"}},
	{Name: "isVideo", Label: "Video", Kind: KindRadio, Section: 7,
		Options: []string{"yes", "audio-only", "undecided"},
		Labels:  map[string]string{"yes": "Audio + Video", "audio-only": "Audio only", "undecided": "TBD"}},
	{Name: "launchDate", Label: "Launch Date", Kind: KindDate, Section: 7},

	// Section 8 — Marketing & Launch (includes distribution and monetization)
	{Name: "platforms", Label: "Platforms", Kind: KindCheckboxGroup, Section: 8,
		Options: []string{"spotify", "apple", "youtube", "amazon", "iheart", "everywhere"}},
	{Name: "wantsMonetization", Label: "Monetization", Kind: KindRadio, Section: 8,
		Options: []string{"yes", "self", "later", "no"},
		Labels: map[string]string{"yes": "Help find sponsors", "self": "Own sponsors",
			"later": "Maybe later", "no": "Not a goal"}},
	{Name: "monetizationNotes", Label: "Monetization Notes", Kind: KindTextarea, Section: 8},
	{Name: "wantsWebsite", Label: "Podcast Website", Kind: KindRadio, Section: 8,
		Options: []string{"yes", "have-one", "no"},
		Labels:  map[string]string{"yes": "Build one", "have-one": "Already have one", "no": "No"}},
	{Name: "launchEpisodes", Label: "Launch Episodes", Kind: KindRadio, Section: 8,
		Options: []string{"1", "3", "5+", "undecided"},
		Labels:  map[string]string{"1": "1 episode", "3": "3 episodes", "5+": "5+ episodes", "undecided": "TBD"}},
	{Name: "wantsTrailer", Label: "Trailer", Kind: KindRadio, Section: 8,
		Options: []string{"yes", "have-one", "no"},
		Labels:  map[string]string{"yes": "Create one", "have-one": "Already have one", "no": "None"}},
	{Name: "wantsPressKit", Label: "Press Kit", Kind: KindRadio, Section: 8,
		Options: []string{"yes", "no", "undecided"},
		Labels:  map[string]string{"yes": "Yes", "no": "No", "undecided": "TBD"}},
	{Name: "teaserIdeas", Label: "Teaser Ideas", Kind: KindTextarea, Section: 8},
	{Name: "marketingNotes", Label: "Marketing Notes", Kind: KindTextarea, Section: 8},
	{Name: "goals", Label: "Goals", Kind: KindTextarea, Section: 8},
	{Name: "anythingElse", Label: "Anything Else", Kind: KindTextarea, Section: 8},

	// Section 9 — Review & Submit
	{Name: ConfirmField, Label: "Confirmation", Kind: KindCheckbox, Section: 9},
}

var fieldsByName = func() map[string]*Field {
	m := make(map[string]*Field, len(Fields))
	for i := range Fields {
		m[Fields[i].Name] = &Fields[i]
	}
	return m
}()

var fieldsBySection = func() map[int][]*Field {
	m := make(map[int][]*Field)
	for i := range Fields {
		f := &Fields[i]
		m[f.Section] = append(m[f.Section], f)
	}
	return m
}()

// FieldByName looks up a field definition, nil if unknown.
func FieldByName(name string) *Field {
	return fieldsByName[name]
}

// SectionFields returns the fields belonging to section n in form order.
func SectionFields(n int) []*Field {
	return fieldsBySection[n]
}

// SectionByNumber returns the section definition, nil if out of range.
func SectionByNumber(n int) *Section {
	if n < 1 || n > TotalSections {
		return nil
	}
	return &Sections[n-1]
}
