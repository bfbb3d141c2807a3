// session.go
//
// Podcast onboarding wizard for Straw Hut Media.
// Copyright (c) 2026 Straw Hut Media

package form

import (
	"fmt"
	"math"
	"strings"
	"sync"
)

// FileDescriptor is what the wizard keeps about an uploaded file. File bytes
// are never read or stored.
type FileDescriptor struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// Session is the full wizard state for one gated company. It replaces the
// original page's module-level globals with an explicit value object so the
// state machine can be driven and tested without any UI. Uploads live only
// here, never in the persisted draft.
//
// A session is shared across requests for one token. Any caller that can
// run concurrently must hold Lock for the whole operation, covering both
// method calls and direct field access.
type Session struct {
	mu sync.Mutex

	Company    string
	Current    int
	Completed  map[int]bool
	Values     map[string]interface{}
	Uploads    map[Category][]FileDescriptor
	InspoLimit int
	Submitted  bool
}

// Lock serializes access to the session state.
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock releases the session.
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// NewSession starts a session at section 1 for the given company. The
// company string is kept exactly as the user typed it (trimmed); it is not
// normalized to the approved list's spelling.
func NewSession(company string) *Session {
	uploads := make(map[Category][]FileDescriptor, len(Categories))
	for _, cat := range Categories {
		uploads[cat] = nil
	}
	return &Session{
		Company:    strings.TrimSpace(company),
		Current:    1,
		Completed:  make(map[int]bool),
		Values:     make(map[string]interface{}),
		Uploads:    uploads,
		InspoLimit: DefaultInspoLimit,
	}
}

// SetValues merges field values into the session and recomputes the current
// section's completion. Unknown field names are ignored rather than
// rejected, matching how the original read whatever the form held.
func (s *Session) SetValues(values map[string]interface{}) {
	for name, v := range values {
		if FieldByName(name) == nil {
			continue
		}
		s.Values[name] = v
	}
	s.CheckSectionCompletion(s.Current)
}

// StringValue returns the trimmed string value of a field, "" when unset or
// not a string.
func (s *Session) StringValue(name string) string {
	v, ok := s.Values[name]
	if !ok {
		return ""
	}
	str, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(str)
}

// BoolValue returns a checkbox value, false when unset.
func (s *Session) BoolValue(name string) bool {
	v, ok := s.Values[name]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// ListValue returns a checkbox-group value. JSON round-trips deliver
// []interface{}, so both representations are accepted.
func (s *Session) ListValue(name string) []string {
	switch v := s.Values[name].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok && str != "" {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// FieldVisible reports whether a field is currently rendered. Hidden
// conditional sub-blocks stay out of validation (their values, if any, are
// still kept).
func (s *Session) FieldVisible(f *Field) bool {
	if f.VisibleWhen == nil {
		return true
	}
	current := s.StringValue(f.VisibleWhen.Field)
	for _, v := range f.VisibleWhen.AnyOf {
		if current == v {
			return true
		}
	}
	return false
}

// fieldFilled reports whether a single field holds meaningful content.
func (s *Session) fieldFilled(f *Field) bool {
	switch f.Kind {
	case KindCheckbox:
		return s.BoolValue(f.Name)
	case KindCheckboxGroup:
		return len(s.ListValue(f.Name)) > 0
	default:
		return s.StringValue(f.Name) != ""
	}
}

// CheckSectionCompletion records section n as completed once it has any
// meaningful content: a non-empty text/date/textarea/select value, a chosen
// radio option, a checked non-confirmation checkbox, or a non-empty upload
// bucket mapped to the section. Completion is monotonic for the life of the
// session; only a draft restore can supply a different completion map.
func (s *Session) CheckSectionCompletion(n int) {
	sec := SectionByNumber(n)
	if sec == nil {
		return
	}

	hasContent := false
	for _, f := range SectionFields(n) {
		if f.Name == ConfirmField {
			continue
		}
		if s.fieldFilled(f) {
			hasContent = true
			break
		}
	}
	if !hasContent {
		for _, cat := range sec.Uploads {
			if len(s.Uploads[cat]) > 0 {
				hasContent = true
				break
			}
		}
	}

	if hasContent {
		s.Completed[n] = true
	}
}

// Progress is the sidebar percentage: completed sections over total, rounded.
func (s *Session) Progress() int {
	return int(math.Round(float64(len(s.Completed)) / float64(TotalSections) * 100))
}

// Next advances to the following section. The current section must validate;
// its completion flag is recorded as a side effect either way.
func (s *Session) Next() error {
	result := s.ValidateSection(s.Current)
	s.CheckSectionCompletion(s.Current)
	if !result.Valid {
		return &ValidationError{Section: s.Current, Fields: result.Invalid}
	}
	if s.Current < TotalSections {
		s.Current++
	}
	return nil
}

// Prev steps back without validation, still recording completion of the
// section being left.
func (s *Session) Prev() {
	s.CheckSectionCompletion(s.Current)
	if s.Current > 1 {
		s.Current--
	}
}

// JumpTo is the sidebar navigation: no validation, but completion of the
// section being left is recomputed first.
func (s *Session) JumpTo(n int) error {
	if SectionByNumber(n) == nil {
		return fmt.Errorf("section %d out of range 1..%d", n, TotalSections)
	}
	s.CheckSectionCompletion(s.Current)
	s.Current = n
	return nil
}

// AddFiles appends descriptors to a category until its cap is reached.
// Only the inspo category has a cap. Returns how many were accepted and
// whether the cap truncated the batch.
func (s *Session) AddFiles(cat Category, files []FileDescriptor) (added int, limitReached bool) {
	limit := 0
	if cat == CategoryInspo {
		limit = s.InspoLimit
	}
	for _, f := range files {
		if limit > 0 && len(s.Uploads[cat]) >= limit {
			limitReached = true
			break
		}
		s.Uploads[cat] = append(s.Uploads[cat], f)
		added++
	}
	s.CheckSectionCompletion(s.Current)
	return added, limitReached
}

// RemoveFile removes by position within a category and recomputes the
// active section's completion.
func (s *Session) RemoveFile(cat Category, index int) error {
	list := s.Uploads[cat]
	if index < 0 || index >= len(list) {
		return fmt.Errorf("no file at index %d in category %s", index, cat)
	}
	s.Uploads[cat] = append(list[:index], list[index+1:]...)
	s.CheckSectionCompletion(s.Current)
	return nil
}

// FileNames projects a category to its name-only list for submissions.
func (s *Session) FileNames(cat Category) []string {
	names := make([]string, 0, len(s.Uploads[cat]))
	for _, f := range s.Uploads[cat] {
		names = append(names, f.Name)
	}
	return names
}

// MarkAllComplete flags every section, used once at final submit.
func (s *Session) MarkAllComplete() {
	for i := 1; i <= TotalSections; i++ {
		s.Completed[i] = true
	}
}

// SubmissionValues copies the field values destined for a submission record:
// everything except the confirmation checkbox.
func (s *Session) SubmissionValues() map[string]interface{} {
	out := make(map[string]interface{}, len(s.Values))
	for name, v := range s.Values {
		if name == ConfirmField {
			continue
		}
		out[name] = v
	}
	return out
}
