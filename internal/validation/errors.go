package validation

import (
	"strings"
	"unicode"
)

// Error is a single validation failure attributed to a section and field.
// Index is the row number for array sections and -1 for scalar sections.
type Error struct {
	Section string
	Field   string
	Index   int
	Code    string
	Message string
}

const (
	CodeRequired          = "REQUIRED"
	CodeInvalidFormat     = "INVALID_FORMAT"
	CodeFutureDate        = "FUTURE_DATE"
	CodeInvalidDateRange  = "INVALID_DATE_RANGE"
	CodeInvalidDocNumber  = "INVALID_DOCUMENT_NUMBER"
	CodePANMismatch       = "PAN_MISMATCH"
	CodeStateCodeMismatch = "STATE_CODE_MISMATCH"
	CodeDuplicateRow      = "DUPLICATE_DOCUMENT"
	CodeMinRows           = "SECTION_REQUIRED"
)

// maxDisplayedErrors caps the error list shown to the actor in one pass.
const maxDisplayedErrors = 10

// Label renders a camelCase field path as a human-readable title,
// e.g. "dateOfBirth" -> "Date Of Birth".
func Label(field string) string {
	if field == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range field {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Finalize deduplicates the collected errors and caps them to the first
// distinct few. Collection itself is exhaustive so the actor sees every
// section's problems in one pass; display is bounded.
func Finalize(errs []Error) []Error {
	if len(errs) == 0 {
		return nil
	}
	seen := make(map[Error]struct{}, len(errs))
	out := make([]Error, 0, len(errs))
	for _, e := range errs {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
		if len(out) == maxDisplayedErrors {
			break
		}
	}
	return out
}
