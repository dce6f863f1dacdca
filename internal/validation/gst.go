package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// GSTIN positional layout (15 characters):
//
//	[0:2]   2-digit state code
//	[2:12]  PAN of the registrant
//	[12]    entity number within the state
//	[13]    'Z' by default
//	[14]    checksum character
var (
	gstPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	panPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

// gstConsistency cross-checks the GST number against the paired PAN and the
// selected state. It runs only when a GST value is present; requiredness is a
// separate field rule.
func gstConsistency(row Row) []Error {
	gst := strings.TrimSpace(row["gst"])
	if gst == "" {
		return nil
	}
	if !gstPattern.MatchString(gst) {
		return []Error{{Field: "gst", Code: CodeInvalidFormat,
			Message: "Gst must be a valid 15-character GSTIN"}}
	}

	var errs []Error

	pan := strings.TrimSpace(row["pan"])
	if pan != "" && gst[2:12] != pan {
		errs = append(errs, Error{Field: "gst", Code: CodePANMismatch,
			Message: "Gst must embed the entity's Pan"})
	}

	state := strings.TrimSpace(row["state"])
	if state != "" {
		if code, ok := StateCode(state); ok && gst[:2] != code {
			errs = append(errs, Error{Field: "gst", Code: CodeStateCodeMismatch,
				Message: fmt.Sprintf("Gst state code must be %s for %s", code, state)})
		}
	}

	return errs
}
