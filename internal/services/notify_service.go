// notify_service.go
//
// Podcast onboarding service for Straw Hut Media.
// Copyright (c) 2026 Straw Hut Media

package services

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/strawhutmedia/onboarding/internal/config"
	"github.com/strawhutmedia/onboarding/internal/models"
)

// Notifier delivers submission notifications through the email relay.
// Delivery is best effort: no retry, no backoff, and a failed send never
// reverses an already-committed submission.
type Notifier struct {
	Endpoint string
	Client   *http.Client
}

// NewNotifier builds the relay client from configuration.
func NewNotifier(cfg *config.Config) *Notifier {
	return &Notifier{
		Endpoint: strings.TrimSuffix(cfg.RelayBaseURL, "/") + "/" + cfg.NotifyEmail,
		Client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Send posts the form-encoded notification for a submission. Resends from
// the admin console are marked in the subject and body header.
func (n *Notifier) Send(sub *models.Submission, resent bool) error {
	values := SubmissionValues(sub)
	get := func(name string) string {
		if v, ok := values[name].(string); ok {
			return strings.TrimSpace(v)
		}
		return ""
	}

	subject := "Onboarding: "
	if resent {
		subject = "Onboarding (Resent): "
	}
	company := sub.Company
	if company == "" {
		company = "Unknown Company"
	}
	podcast := get("podcastName")
	if podcast == "" {
		podcast = "Unnamed Podcast"
	}
	subject += company + " — " + podcast

	body := url.Values{}
	body.Set("_subject", subject)
	body.Set("Company", sub.Company)
	body.Set("Contact", strings.TrimSpace(get("contactFirstName")+" "+get("contactLastName")))
	body.Set("Email", get("contactEmail"))
	body.Set("Phone", get("contactPhone"))
	body.Set("Podcast Name", get("podcastName"))
	body.Set("message", n.messageBody(sub, values, resent))
	body.Set("_template", "box")

	req, err := http.NewRequest(http.MethodPost, n.Endpoint, strings.NewReader(body.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := n.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("relay returned status %d", resp.StatusCode)
	}
	return nil
}

// SendAsync fires the notification without blocking the caller. The outcome
// is only logged; the wizard has no user-facing failure path for delivery.
func (n *Notifier) SendAsync(sub *models.Submission) {
	go func() {
		if err := n.Send(sub, false); err != nil {
			log.Printf("Notification send failed for %s: %v", sub.SubmissionID, err)
			return
		}
		log.Printf("Notification sent for %s", sub.SubmissionID)
	}()
}

// bodyLine renders one "Label: value" line with the relay placeholder.
func bodyLine(label, value string) string {
	if strings.TrimSpace(value) == "" {
		value = "Not provided"
	}
	return label + ": " + value + "\n"
}

// messageBody builds the plain-text summary covering every field, grouped
// by topic the same way the admin review is.
func (n *Notifier) messageBody(sub *models.Submission, values map[string]interface{}, resent bool) string {
	get := func(name string) string {
		if v, ok := values[name].(string); ok {
			return strings.TrimSpace(v)
		}
		return ""
	}

	var b strings.Builder
	if resent {
		b.WriteString("PODCAST ONBOARDING SUBMISSION (Resent from Admin)\n")
	} else {
		b.WriteString("PODCAST ONBOARDING SUBMISSION\n")
	}
	b.WriteString(bodyLine("Company", sub.Company))
	b.WriteString(bodyLine("Submitted", sub.SubmittedAt.Format(time.RFC3339)))
	b.WriteString("\n")

	b.WriteString("--- CONTACT INFORMATION ---\n")
	b.WriteString(bodyLine("Name", strings.TrimSpace(get("contactFirstName")+" "+get("contactLastName"))))
	b.WriteString(bodyLine("Email", get("contactEmail")))
	b.WriteString(bodyLine("Phone", get("contactPhone")))
	b.WriteString(bodyLine("Role", get("contactRole")))
	b.WriteString(bodyLine("Timezone", get("contactTimezone")))
	b.WriteString(bodyLine("Preferred Contact", get("preferredContact")))
	b.WriteString("\n")

	b.WriteString("--- PODCAST BASICS ---\n")
	b.WriteString(bodyLine("Podcast Name", get("podcastName")))
	b.WriteString(bodyLine("Description", get("podcastDescription")))
	b.WriteString(bodyLine("Status", get("podcastStatus")))
	b.WriteString(bodyLine("Brand Status", get("brandStatus")))
	if v := get("existingPodcastUrl"); v != "" {
		b.WriteString(bodyLine("Existing URL", v))
	}
	b.WriteString(bodyLine("Genre", get("podcastGenre")))
	b.WriteString(bodyLine("Format", get("podcastFormat")))
	b.WriteString(bodyLine("Target Audience", get("targetAudience")))
	b.WriteString("\n")

	b.WriteString("--- BRANDING ---\n")
	b.WriteString(bodyLine("Has Guidelines", get("hasBrandGuidelines")))
	b.WriteString(bodyLine("Brand Colors", get("brandColors")))
	b.WriteString(bodyLine("Fonts", get("brandFonts")))
	b.WriteString(bodyLine("Voice/Tone", get("brandVoice")))
	if names := DecodeStringList(sub.BrandFiles); len(names) > 0 {
		b.WriteString(bodyLine("Guideline Files", strings.Join(names, ", ")))
	}
	if names := DecodeStringList(sub.LogoFiles); len(names) > 0 {
		b.WriteString(bodyLine("Logo Files", strings.Join(names, ", ")))
	}
	b.WriteString("\n")

	b.WriteString("--- INSPIRATION ---\n")
	b.WriteString(bodyLine("Podcasts Admired", get("inspoPodcasts")))
	b.WriteString(bodyLine("Brands Admired", get("inspoBrands")))
	b.WriteString(bodyLine("Visual Notes", get("inspoNotes")))
	if names := DecodeStringList(sub.InspoFiles); len(names) > 0 {
		b.WriteString(bodyLine("Images", strings.Join(names, ", ")))
	}
	b.WriteString("\n")

	b.WriteString("--- MUSIC & AUDIO ---\n")
	b.WriteString(bodyLine("Needs Music", get("needsMusic")))
	b.WriteString(bodyLine("Music Vibe", get("musicVibe")))
	b.WriteString(bodyLine("Music References", get("musicReferences")))
	b.WriteString(bodyLine("Sound Effects", get("wantsSFX")))
	if names := DecodeStringList(sub.MusicFiles); len(names) > 0 {
		b.WriteString(bodyLine("Audio Files", strings.Join(names, ", ")))
	}
	b.WriteString("\n")

	b.WriteString("--- SOCIAL MEDIA & WEB ---\n")
	b.WriteString(bodyLine("Website", get("socialWebsite")))
	b.WriteString(bodyLine("Instagram", get("socialInstagram")))
	b.WriteString(bodyLine("X (Twitter)", get("socialTwitter")))
	b.WriteString(bodyLine("TikTok", get("socialTiktok")))
	b.WriteString(bodyLine("YouTube", get("socialYoutube")))
	b.WriteString(bodyLine("LinkedIn", get("socialLinkedin")))
	b.WriteString(bodyLine("Social Management", get("manageSocial")))
	b.WriteString(bodyLine("Short-form Clips", get("wantsClips")))
	b.WriteString("\n")

	b.WriteString("--- RECORDING & LOGISTICS ---\n")
	b.WriteString(bodyLine("Location", get("recordingLocation")))
	if v := get("locationAddress"); v != "" {
		b.WriteString(bodyLine("Address", v))
	}
	b.WriteString(bodyLine("Frequency", get("episodeFrequency")))
	b.WriteString(bodyLine("Episode Length", get("episodeLength")))
	b.WriteString(bodyLine("Host(s)", get("hostsInfo")))
	b.WriteString(bodyLine("Guests", get("hasGuests")))
	b.WriteString(bodyLine("Video", get("isVideo")))
	b.WriteString(bodyLine("Launch Date", get("launchDate")))
	b.WriteString("\n")

	b.WriteString("--- DISTRIBUTION & MONETIZATION ---\n")
	platforms := DecodeStringList(sub.Platforms)
	b.WriteString(bodyLine("Platforms", strings.Join(platforms, ", ")))
	b.WriteString(bodyLine("Monetization", get("wantsMonetization")))
	b.WriteString(bodyLine("Monetization Notes", get("monetizationNotes")))
	b.WriteString(bodyLine("Podcast Website", get("wantsWebsite")))
	b.WriteString("\n")

	b.WriteString("--- MARKETING & LAUNCH ---\n")
	b.WriteString(bodyLine("Launch Episodes", get("launchEpisodes")))
	b.WriteString(bodyLine("Trailer", get("wantsTrailer")))
	b.WriteString(bodyLine("Press Kit", get("wantsPressKit")))
	b.WriteString(bodyLine("Teaser Ideas", get("teaserIdeas")))
	b.WriteString(bodyLine("Marketing Notes", get("marketingNotes")))
	b.WriteString(bodyLine("Goals", get("goals")))
	b.WriteString("\n")

	b.WriteString("--- ADDITIONAL ---\n")
	b.WriteString(bodyLine("Anything Else", get("anythingElse")))

	return b.String()
}
