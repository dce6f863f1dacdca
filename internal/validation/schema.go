package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"tms/internal/entities"
)

// timeNow is swapped in tests.
var timeNow = time.Now

var (
	phonePattern   = regexp.MustCompile(`^[6-9]\d{9}$`)
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	pinCodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	namePattern    = regexp.MustCompile(`^\S.*$`)
)

// documentNumberPatterns maps a document type code to the format its number
// must follow. Types without an entry carry free-form numbers.
var documentNumberPatterns = map[string]*regexp.Regexp{
	"DN001": regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`), // PAN card
	"DN002": regexp.MustCompile(`^[A-Z]{2}[0-9]{13}$`),     // driving licence
	"DN003": regexp.MustCompile(`^[2-9][0-9]{11}$`),        // Aadhaar
}

// ValidateEntity validates the entity against the schemas of its kind.
// Draft strictness checks only the minimal core fields so a barely-started
// record can still be parked; Full runs every section.
func ValidateEntity(e *entities.Entity, level Strictness) []Error {
	var errs []Error
	for _, schema := range schemasFor(e.Kind, level) {
		errs = append(errs, schema.Validate(sectionRows(schema.Name, e))...)
	}
	return Finalize(errs)
}

func schemasFor(kind entities.EntityKind, level Strictness) []SectionSchema {
	if level == Draft {
		return []SectionSchema{draftProfileSchema()}
	}

	schemas := []SectionSchema{
		profileSchema(kind),
		addressesSchema(),
		documentsSchema(),
	}
	if kind == entities.KindDriver {
		schemas = append(schemas, accidentsSchema())
	}
	return schemas
}

func draftProfileSchema() SectionSchema {
	return SectionSchema{
		Name:   "profile",
		Scalar: true,
		Fields: []FieldRule{
			{Field: "fullName", Required: true, Pattern: namePattern},
			{Field: "dateOfBirth", Required: true},
		},
		RowRules: []RowRule{
			notInFuture("dateOfBirth", timeNow),
		},
	}
}

func profileSchema(kind entities.EntityKind) SectionSchema {
	// transporters and consignors are taxable parties; their PAN and GST
	// are mandatory, for the rest they are validated when present
	taxable := kind == entities.KindTransporter || kind == entities.KindConsignor

	return SectionSchema{
		Name:   "profile",
		Scalar: true,
		Fields: []FieldRule{
			{Field: "fullName", Required: true, Pattern: namePattern},
			{Field: "dateOfBirth", Required: true},
			{Field: "phone", Required: true, Pattern: phonePattern,
				Message: "Phone must be a 10-digit Indian mobile number"},
			{Field: "email", Required: true, Pattern: emailPattern},
			{Field: "state", Required: true},
			{Field: "pan", Required: taxable, Pattern: panPattern},
			{Field: "gst", Required: taxable},
		},
		RowRules: []RowRule{
			notInFuture("dateOfBirth", timeNow),
			gstConsistency,
		},
	}
}

func addressesSchema() SectionSchema {
	return SectionSchema{
		Name:    "addresses",
		MinRows: 1,
		Fields: []FieldRule{
			{Field: "line1", Required: true},
			{Field: "city", Required: true},
			{Field: "state", Required: true},
			{Field: "pinCode", Required: true, Pattern: pinCodePattern},
		},
		RowRules: []RowRule{
			notInFuture("validFrom", timeNow),
			dateOrder("validFrom", "validTo"),
		},
	}
}

func documentsSchema() SectionSchema {
	return SectionSchema{
		Name: "documents",
		Fields: []FieldRule{
			{Field: "type", Required: true},
			{Field: "number", Required: true},
		},
		RowRules: []RowRule{
			documentNumberFormat,
			notInFuture("validFrom", timeNow),
			dateOrder("validFrom", "validTo"),
		},
		UniqueKey: []string{"type", "number"},
	}
}

func accidentsSchema() SectionSchema {
	return SectionSchema{
		Name: "accidentRecords",
		Fields: []FieldRule{
			{Field: "type", Required: true},
			{Field: "date", Required: true},
		},
		RowRules: []RowRule{
			notInFuture("date", timeNow),
		},
	}
}

func documentNumberFormat(row Row) []Error {
	docType := strings.TrimSpace(row["type"])
	number := strings.TrimSpace(row["number"])
	if docType == "" || number == "" {
		return nil
	}
	pattern, ok := documentNumberPatterns[docType]
	if !ok {
		return nil
	}
	if !pattern.MatchString(number) {
		return []Error{{Field: "number", Code: CodeInvalidDocNumber,
			Message: fmt.Sprintf("Number is not valid for document type %s", docType)}}
	}
	return nil
}

// section row extraction

func sectionRows(name string, e *entities.Entity) []Row {
	switch name {
	case "profile":
		return []Row{profileRow(e.Profile)}
	case "addresses":
		rows := make([]Row, 0, len(e.Addresses))
		for _, a := range e.Addresses {
			rows = append(rows, addressRow(a))
		}
		return rows
	case "documents":
		rows := make([]Row, 0, len(e.Documents))
		for _, d := range e.Documents {
			rows = append(rows, documentRow(d))
		}
		return rows
	case "accidentRecords":
		rows := make([]Row, 0, len(e.Accidents))
		for _, a := range e.Accidents {
			rows = append(rows, accidentRow(a))
		}
		return rows
	default:
		return nil
	}
}

func profileRow(p entities.Profile) Row {
	return Row{
		"fullName":    p.FullName,
		"dateOfBirth": p.DateOfBirth,
		"phone":       p.Phone,
		"email":       p.Email,
		"pan":         p.PAN,
		"gst":         p.GST,
		"state":       p.State,
	}
}

func addressRow(a entities.Address) Row {
	return Row{
		"line1":     a.Line1,
		"line2":     a.Line2,
		"city":      a.City,
		"state":     a.State,
		"pinCode":   a.PinCode,
		"validFrom": a.ValidFrom,
		"validTo":   a.ValidTo,
	}
}

func documentRow(d entities.Document) Row {
	return Row{
		"type":      d.Type,
		"number":    d.Number,
		"validFrom": d.ValidFrom,
		"validTo":   d.ValidTo,
	}
}

func accidentRow(a entities.AccidentRecord) Row {
	return Row{
		"type":        a.Type,
		"date":        a.Date,
		"description": a.Description,
	}
}

// StripEmptyRows removes completely empty rows from the entity's array
// sections so they are excluded from the persisted payload.
func StripEmptyRows(e *entities.Entity) {
	addresses := e.Addresses[:0:0]
	for _, a := range e.Addresses {
		if !isEmptyRow(addressRow(a)) {
			addresses = append(addresses, a)
		}
	}
	e.Addresses = addresses

	documents := e.Documents[:0:0]
	for _, d := range e.Documents {
		if !isEmptyRow(documentRow(d)) {
			documents = append(documents, d)
		}
	}
	e.Documents = documents

	accidents := e.Accidents[:0:0]
	for _, a := range e.Accidents {
		if !isEmptyRow(accidentRow(a)) {
			accidents = append(accidents, a)
		}
	}
	e.Accidents = accidents
}
