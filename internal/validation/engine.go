package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Strictness selects the validation profile. Draft checks only the minimal
// core fields; Full runs every section schema.
type Strictness int

const (
	Draft Strictness = iota
	Full
)

const dateLayout = "2006-01-02"

// Row is the field view of one section row. Array sections produce one row
// per element, scalar sections exactly one.
type Row map[string]string

// FieldRule is a declarative constraint on a single field.
type FieldRule struct {
	Field    string
	Required bool
	Pattern  *regexp.Regexp
	// Message overrides the default pattern-failure message.
	Message string
}

// RowRule checks constraints spanning several fields of one row. The engine
// fills in section and row index on the returned errors.
type RowRule func(row Row) []Error

// SectionSchema declares the rules for one entity section.
type SectionSchema struct {
	Name     string
	Scalar   bool
	MinRows  int
	Fields   []FieldRule
	RowRules []RowRule
	// UniqueKey lists the fields whose combination must be unique across
	// rows, e.g. (type, number) for documents.
	UniqueKey []string
}

// Validate runs the schema over the given rows, exhaustively collecting
// every failure. Completely empty rows of array sections are skipped: they
// model optional repeatable form sections.
func (s SectionSchema) Validate(rows []Row) []Error {
	var errs []Error

	nonEmpty := 0
	seen := make(map[string]int)

	for i, row := range rows {
		idx := i
		if s.Scalar {
			idx = -1
		}
		if !s.Scalar && isEmptyRow(row) {
			continue
		}
		nonEmpty++

		errs = append(errs, s.validateRow(row, idx)...)

		if len(s.UniqueKey) > 0 {
			key := s.rowKey(row)
			if first, ok := seen[key]; ok {
				errs = append(errs,
					s.newError(s.UniqueKey[len(s.UniqueKey)-1], first, CodeDuplicateRow,
						fmt.Sprintf("%s section has duplicate entries at rows %d and %d", Label(s.Name), first+1, idx+1)),
					s.newError(s.UniqueKey[len(s.UniqueKey)-1], idx, CodeDuplicateRow,
						fmt.Sprintf("%s section has duplicate entries at rows %d and %d", Label(s.Name), first+1, idx+1)),
				)
			} else {
				seen[key] = idx
			}
		}
	}

	if nonEmpty < s.MinRows {
		errs = append(errs, s.newError("", -1, CodeMinRows,
			fmt.Sprintf("At least %d %s entry is required", s.MinRows, strings.ToLower(Label(s.Name)))))
	}

	return errs
}

func (s SectionSchema) validateRow(row Row, idx int) []Error {
	var errs []Error
	for _, f := range s.Fields {
		value := strings.TrimSpace(row[f.Field])
		if value == "" {
			if f.Required {
				errs = append(errs, s.newError(f.Field, idx, CodeRequired,
					fmt.Sprintf("%s is required", Label(f.Field))))
			}
			continue
		}
		if f.Pattern != nil && !f.Pattern.MatchString(value) {
			msg := f.Message
			if msg == "" {
				msg = fmt.Sprintf("%s has an invalid format", Label(f.Field))
			}
			errs = append(errs, s.newError(f.Field, idx, CodeInvalidFormat, msg))
		}
	}
	for _, rule := range s.RowRules {
		for _, e := range rule(row) {
			e.Section = s.Name
			e.Index = idx
			errs = append(errs, e)
		}
	}
	return errs
}

func (s SectionSchema) newError(field string, idx int, code, message string) Error {
	return Error{
		Section: s.Name,
		Field:   field,
		Index:   idx,
		Code:    code,
		Message: message,
	}
}

func (s SectionSchema) rowKey(row Row) string {
	parts := make([]string, 0, len(s.UniqueKey))
	for _, f := range s.UniqueKey {
		parts = append(parts, strings.TrimSpace(row[f]))
	}
	return strings.Join(parts, "\x00")
}

func isEmptyRow(row Row) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// date rules

func notInFuture(field string, now func() time.Time) RowRule {
	return func(row Row) []Error {
		value := strings.TrimSpace(row[field])
		if value == "" {
			return nil
		}
		d, err := time.Parse(dateLayout, value)
		if err != nil {
			return []Error{{Field: field, Code: CodeInvalidFormat,
				Message: fmt.Sprintf("%s must be a valid date (YYYY-MM-DD)", Label(field))}}
		}
		if d.After(now().UTC().Truncate(24 * time.Hour)) {
			return []Error{{Field: field, Code: CodeFutureDate,
				Message: fmt.Sprintf("%s must not be in the future", Label(field))}}
		}
		return nil
	}
}

func dateOrder(fromField, toField string) RowRule {
	return func(row Row) []Error {
		fromVal := strings.TrimSpace(row[fromField])
		toVal := strings.TrimSpace(row[toField])
		if fromVal == "" || toVal == "" {
			return nil
		}
		from, errFrom := time.Parse(dateLayout, fromVal)
		to, errTo := time.Parse(dateLayout, toVal)
		if errFrom != nil || errTo != nil {
			// format failures are reported by the field's own rule
			return nil
		}
		if !to.After(from) {
			return []Error{{Field: toField, Code: CodeInvalidDateRange,
				Message: fmt.Sprintf("%s must be after %s", Label(toField), Label(fromField))}}
		}
		return nil
	}
}
