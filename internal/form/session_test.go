package form

import (
	"fmt"
	"sync"
	"testing"
)

// fillRequired satisfies the required fields of sections 1 and 2.
func fillRequired(s *Session) {
	s.SetValues(map[string]interface{}{
		"contactFirstName": "Ada",
		"contactLastName":  "Lovelace",
		"contactEmail":     "ada@example.com",
		"podcastName":      "Analytical Engines",
		"podcastStatus":    "new",
	})
}

func TestNewSessionStartsAtSectionOne(t *testing.T) {
	s := NewSession("  Acme Corp  ")
	if s.Current != 1 {
		t.Errorf("Expected section 1, got %d", s.Current)
	}
	if s.Company != "Acme Corp" {
		t.Errorf("Expected trimmed company, got %q", s.Company)
	}
	if s.Progress() != 0 {
		t.Errorf("Expected 0%% progress, got %d", s.Progress())
	}
}

func TestNextBlockedByRequiredFields(t *testing.T) {
	s := NewSession("Acme")

	err := s.Next()
	if err == nil {
		t.Fatal("Expected validation error on empty section 1")
	}
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}
	if len(ve.Fields) != 3 {
		t.Errorf("Expected 3 invalid fields, got %v", ve.Fields)
	}
	if s.Current != 1 {
		t.Errorf("Section advanced despite failed validation: %d", s.Current)
	}

	// Whitespace-only values do not pass.
	s.SetValues(map[string]interface{}{
		"contactFirstName": "   ",
		"contactLastName":  "Lovelace",
		"contactEmail":     "ada@example.com",
	})
	if err := s.Next(); err == nil {
		t.Error("Expected whitespace-only required field to fail validation")
	}

	s.SetValues(map[string]interface{}{"contactFirstName": "Ada"})
	if err := s.Next(); err != nil {
		t.Errorf("Expected valid section 1 to advance: %v", err)
	}
	if s.Current != 2 {
		t.Errorf("Expected section 2, got %d", s.Current)
	}
}

func TestRadioRequiredNeedsSelection(t *testing.T) {
	s := NewSession("Acme")
	fillRequired(s)
	s.Current = 2
	s.Values["podcastStatus"] = ""

	result := s.ValidateSection(2)
	if result.Valid {
		t.Error("Expected unselected required radio group to fail")
	}

	s.Values["podcastStatus"] = "takeover"
	if result := s.ValidateSection(2); !result.Valid {
		t.Errorf("Expected selected radio to pass, invalid: %v", result.Invalid)
	}
}

func TestHiddenRequiredFieldsAreSkipped(t *testing.T) {
	// existingPodcastUrl only renders for takeover; even if it were
	// required, a "new" podcast must not be blocked by it.
	s := NewSession("Acme")
	fillRequired(s)

	f := FieldByName("existingPodcastUrl")
	if f == nil {
		t.Fatal("schema missing existingPodcastUrl")
	}
	orig := f.Required
	f.Required = true
	defer func() { f.Required = orig }()

	s.Values["podcastStatus"] = "new"
	if result := s.ValidateSection(2); !result.Valid {
		t.Errorf("Hidden required field blocked validation: %v", result.Invalid)
	}

	s.Values["podcastStatus"] = "takeover"
	if result := s.ValidateSection(2); result.Valid {
		t.Error("Visible required field should block validation when empty")
	}
}

func TestPrevAndJumpSkipValidation(t *testing.T) {
	s := NewSession("Acme")
	s.Current = 3

	s.Prev()
	if s.Current != 2 {
		t.Errorf("Expected section 2 after prev, got %d", s.Current)
	}

	if err := s.JumpTo(7); err != nil {
		t.Fatalf("Jump failed: %v", err)
	}
	if s.Current != 7 {
		t.Errorf("Expected section 7 after jump, got %d", s.Current)
	}

	if err := s.JumpTo(0); err == nil {
		t.Error("Expected out-of-range jump to fail")
	}
	if err := s.JumpTo(TotalSections + 1); err == nil {
		t.Error("Expected out-of-range jump to fail")
	}
}

func TestPrevStopsAtFirstSection(t *testing.T) {
	s := NewSession("Acme")
	s.Prev()
	if s.Current != 1 {
		t.Errorf("Expected to stay at section 1, got %d", s.Current)
	}
}

func TestCompletionIsMonotonic(t *testing.T) {
	s := NewSession("Acme")
	s.SetValues(map[string]interface{}{"contactFirstName": "Ada"})
	if !s.Completed[1] {
		t.Fatal("Expected section 1 completed after content")
	}

	// Clearing the field later never reverts the flag.
	s.SetValues(map[string]interface{}{"contactFirstName": ""})
	if !s.Completed[1] {
		t.Error("Completion reverted after clearing content")
	}
}

func TestCompletionFromUploadsOnly(t *testing.T) {
	cases := []struct {
		section int
		cat     Category
	}{
		{3, CategoryBrand},
		{3, CategoryLogo},
		{4, CategoryInspo},
		{5, CategoryMusic},
	}
	for _, tc := range cases {
		s := NewSession("Acme")
		s.Current = tc.section
		s.AddFiles(tc.cat, []FileDescriptor{{Name: "a.pdf", Size: 10}})
		if !s.Completed[tc.section] {
			t.Errorf("Section %d not completed by %s upload", tc.section, tc.cat)
		}
	}
}

func TestConfirmCheckboxDoesNotCompleteReview(t *testing.T) {
	s := NewSession("Acme")
	s.Current = 9
	s.SetValues(map[string]interface{}{ConfirmField: true})
	if s.Completed[9] {
		t.Error("Confirmation checkbox alone must not mark the review section complete")
	}
}

func TestInspoUploadCap(t *testing.T) {
	s := NewSession("Acme")
	s.Current = 4

	batch := make([]FileDescriptor, 10)
	for i := range batch {
		batch[i] = FileDescriptor{Name: fmt.Sprintf("img-%d.png", i), Size: 100}
	}
	added, limited := s.AddFiles(CategoryInspo, batch)
	if added != 10 || limited {
		t.Fatalf("Expected 10 accepted without limit, got added=%d limited=%v", added, limited)
	}

	added, limited = s.AddFiles(CategoryInspo, []FileDescriptor{{Name: "one-more.png", Size: 1}})
	if added != 0 {
		t.Errorf("Expected 11th file rejected, got added=%d", added)
	}
	if !limited {
		t.Error("Expected limit-reached flag on 11th add")
	}
	if len(s.Uploads[CategoryInspo]) != 10 {
		t.Errorf("Expected list length 10, got %d", len(s.Uploads[CategoryInspo]))
	}

	// Other categories have no cap.
	added, limited = s.AddFiles(CategoryBrand, batch)
	if added != 10 || limited {
		t.Errorf("Brand category should be uncapped, got added=%d limited=%v", added, limited)
	}
}

func TestRemoveFileByPosition(t *testing.T) {
	s := NewSession("Acme")
	s.AddFiles(CategoryMusic, []FileDescriptor{
		{Name: "a.mp3", Size: 1},
		{Name: "b.mp3", Size: 2},
		{Name: "c.mp3", Size: 3},
	})

	if err := s.RemoveFile(CategoryMusic, 1); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	names := s.FileNames(CategoryMusic)
	if len(names) != 2 || names[0] != "a.mp3" || names[1] != "c.mp3" {
		t.Errorf("Unexpected list after removal: %v", names)
	}

	if err := s.RemoveFile(CategoryMusic, 5); err == nil {
		t.Error("Expected out-of-range removal to fail")
	}
}

func TestProgressRounding(t *testing.T) {
	s := NewSession("Acme")
	s.Completed[1] = true
	s.Completed[2] = true
	// 2/9 = 22.2% -> 22
	if got := s.Progress(); got != 22 {
		t.Errorf("Expected 22, got %d", got)
	}
	s.MarkAllComplete()
	if got := s.Progress(); got != 100 {
		t.Errorf("Expected 100, got %d", got)
	}
}

func TestSetValuesIgnoresUnknownFields(t *testing.T) {
	s := NewSession("Acme")
	s.SetValues(map[string]interface{}{"nonsenseField": "x"})
	if _, ok := s.Values["nonsenseField"]; ok {
		t.Error("Unknown field accepted into session values")
	}
}

func TestSubmissionValuesExcludeConfirmation(t *testing.T) {
	s := NewSession("Acme")
	fillRequired(s)
	s.SetValues(map[string]interface{}{ConfirmField: true})

	values := s.SubmissionValues()
	if _, ok := values[ConfirmField]; ok {
		t.Error("Confirmation checkbox leaked into submission values")
	}
	if values["contactFirstName"] != "Ada" {
		t.Errorf("Expected field values copied, got %v", values["contactFirstName"])
	}
}

func TestConcurrentWritersUnderLock(t *testing.T) {
	s := NewSession("Acme")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.Lock()
				s.SetValues(map[string]interface{}{
					"contactFirstName": fmt.Sprintf("writer-%d", n),
					"podcastName":      "Analytical Engines",
				})
				s.CheckSectionCompletion(1)
				s.Unlock()
			}
		}(i)
	}
	wg.Wait()

	s.Lock()
	defer s.Unlock()
	if s.StringValue("podcastName") != "Analytical Engines" {
		t.Errorf("Expected last written value to survive, got %q", s.StringValue("podcastName"))
	}
}
