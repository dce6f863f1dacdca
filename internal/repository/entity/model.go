package entity

import "time"

type EntityDB struct {
	ID                string
	Kind              string
	Status            string
	CreatedBy         string
	Version           int64
	PendingWithUserID string
	PendingWith       string
	Remarks           string
	ApprovalStatus    string
	Profile           []byte
	Addresses         []byte
	Accidents         []byte
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type DocumentDB struct {
	Type      string
	Number    string
	ValidFrom string
	ValidTo   string
}

// JSONB shapes for the profile, addresses and accidents columns.

type ProfileJSON struct {
	FullName    string `json:"fullName"`
	DateOfBirth string `json:"dateOfBirth"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	PAN         string `json:"pan"`
	GST         string `json:"gst"`
	State       string `json:"state"`
}

type AddressJSON struct {
	Line1     string `json:"line1"`
	Line2     string `json:"line2"`
	City      string `json:"city"`
	State     string `json:"state"`
	PinCode   string `json:"pinCode"`
	ValidFrom string `json:"validFrom"`
	ValidTo   string `json:"validTo"`
}

type AccidentJSON struct {
	Type        string `json:"type"`
	Date        string `json:"date"`
	Description string `json:"description"`
}
