package entities

import (
	"time"
)

type Entity struct {
	ID        string
	Kind      EntityKind
	Status    EntityStatus
	CreatedBy string
	Version   int64
	Approval  ApprovalState
	Profile   Profile
	Addresses []Address
	Documents []Document
	Accidents []AccidentRecord
	CreatedAt time.Time
	UpdatedAt time.Time
}

type EntityKind string

const (
	KindDriver      EntityKind = "driver"
	KindTransporter EntityKind = "transporter"
	KindConsignor   EntityKind = "consignor"
	KindWarehouse   EntityKind = "warehouse"
)

func (k EntityKind) String() string {
	return string(k)
}

func (k EntityKind) IsValid() bool {
	switch k {
	case KindDriver, KindTransporter, KindConsignor, KindWarehouse:
		return true
	default:
		return false
	}
}

type EntityStatus string

const (
	StatusDraft       EntityStatus = "DRAFT"
	StatusSaveAsDraft EntityStatus = "SAVE_AS_DRAFT"
	StatusPending     EntityStatus = "PENDING"
	StatusActive      EntityStatus = "ACTIVE"
	StatusInactive    EntityStatus = "INACTIVE"
)

func (s EntityStatus) String() string {
	return string(s)
}

func (s EntityStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusSaveAsDraft, StatusPending, StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

// IsDraft reports whether the entity has never been routed for approval.
// SAVE_AS_DRAFT is a legacy alias of DRAFT kept for stored records.
func (s EntityStatus) IsDraft() bool {
	return s == StatusDraft || s == StatusSaveAsDraft
}

// IsRejected reports whether the entity was returned by an approver.
func (s EntityStatus) IsRejected() bool {
	return s == StatusInactive
}

// ApprovalState tracks where an entity sits in the approval cycle.
// Remarks are present if and only if the entity status is INACTIVE.
type ApprovalState struct {
	PendingWithUserID string
	PendingWith       string
	Remarks           string
	CurrentStatus     ApprovalOutcome
}

type ApprovalOutcome string

const (
	OutcomePending  ApprovalOutcome = "PENDING"
	OutcomeApproved ApprovalOutcome = "APPROVED"
	OutcomeRejected ApprovalOutcome = "REJECTED"
)

func (o ApprovalOutcome) String() string {
	return string(o)
}

// Profile holds the scalar fields shared by all entity kinds. Dates use the
// ISO "2006-01-02" layout; semantic checks live in the validation package.
type Profile struct {
	FullName    string
	DateOfBirth string
	Phone       string
	Email       string
	PAN         string
	GST         string
	State       string
}

type Address struct {
	Line1     string
	Line2     string
	City      string
	State     string
	PinCode   string
	ValidFrom string
	ValidTo   string
}

type Document struct {
	Type      string
	Number    string
	ValidFrom string
	ValidTo   string
}

type AccidentRecord struct {
	Type        string
	Date        string
	Description string
}

// EntityModify is a patch: nil fields are left untouched. Version carries the
// version the caller last read; writes against a stale version are rejected.
type EntityModify struct {
	ID        *string
	Status    *EntityStatus
	Version   *int64
	Approval  *ApprovalState
	Profile   *Profile
	Addresses *[]Address
	Documents *[]Document
	Accidents *[]AccidentRecord
}

// Clone returns a deep copy; section slices are copied, not shared.
func (e *Entity) Clone() *Entity {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Addresses = append([]Address(nil), e.Addresses...)
	clone.Documents = append([]Document(nil), e.Documents...)
	clone.Accidents = append([]AccidentRecord(nil), e.Accidents...)
	return &clone
}

// Apply returns a copy of the entity with the patch applied.
func (e *Entity) Apply(modify EntityModify) *Entity {
	merged := e.Clone()
	if modify.Status != nil {
		merged.Status = *modify.Status
	}
	if modify.Approval != nil {
		merged.Approval = *modify.Approval
	}
	if modify.Profile != nil {
		merged.Profile = *modify.Profile
	}
	if modify.Addresses != nil {
		merged.Addresses = append([]Address(nil), (*modify.Addresses)...)
	}
	if modify.Documents != nil {
		merged.Documents = append([]Document(nil), (*modify.Documents)...)
	}
	if modify.Accidents != nil {
		merged.Accidents = append([]AccidentRecord(nil), (*modify.Accidents)...)
	}
	return merged
}
