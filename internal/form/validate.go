package form

import (
	"fmt"
	"strings"
)

// SectionResult is the outcome of validating one section.
type SectionResult struct {
	Valid   bool
	Invalid []string // field names that failed, in form order
}

// ValidationError blocks a forward transition.
type ValidationError struct {
	Section int
	Fields  []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("section %d has incomplete required fields: %s",
		e.Section, strings.Join(e.Fields, ", "))
}

// ValidateSection checks every required field in section n. Radio groups are
// valid once an option is selected; everything else needs a non-empty
// trimmed value. Fields hidden by a conditional-visibility rule are skipped,
// so hidden required fields never block navigation. Only forward navigation
// consults this; prev and sidebar jumps do not.
func (s *Session) ValidateSection(n int) SectionResult {
	result := SectionResult{Valid: true}
	for _, f := range SectionFields(n) {
		if !f.Required || !s.FieldVisible(f) {
			continue
		}
		if !s.fieldFilled(f) {
			result.Valid = false
			result.Invalid = append(result.Invalid, f.Name)
		}
	}
	return result
}
