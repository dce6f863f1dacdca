package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"tms/internal/entities"
)

type Profile struct {
	FullName    string `json:"fullName" validate:"max=120"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Phone       string `json:"phone" validate:"max=15"`
	Email       string `json:"email" validate:"max=254"`
	PAN         string `json:"pan" validate:"max=10"`
	GST         string `json:"gst" validate:"max=15"`
	State       string `json:"state" validate:"max=64"`
}

type Address struct {
	Line1     string `json:"line1" validate:"max=255"`
	Line2     string `json:"line2" validate:"max=255"`
	City      string `json:"city" validate:"max=100"`
	State     string `json:"state" validate:"max=64"`
	PinCode   string `json:"pinCode" validate:"max=6"`
	ValidFrom string `json:"validFrom" validate:"omitempty,datetime=2006-01-02"`
	ValidTo   string `json:"validTo" validate:"omitempty,datetime=2006-01-02"`
}

type Document struct {
	Type      string `json:"type" validate:"max=16"`
	Number    string `json:"number" validate:"max=32"`
	ValidFrom string `json:"validFrom" validate:"omitempty,datetime=2006-01-02"`
	ValidTo   string `json:"validTo" validate:"omitempty,datetime=2006-01-02"`
}

type Accident struct {
	Type        string `json:"type" validate:"max=64"`
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Description string `json:"description" validate:"max=1000"`
}

type Approval struct {
	PendingWithUserID string `json:"pendingWithUserId"`
	PendingWith       string `json:"pendingWith"`
	Remarks           string `json:"remarks"`
	CurrentStatus     string `json:"currentStatus"`
}

type Entity struct {
	ID        string     `json:"id"`
	Kind      string     `json:"kind"`
	Status    string     `json:"status"`
	CreatedBy string     `json:"createdBy"`
	Version   int64      `json:"version"`
	Approval  Approval   `json:"approval"`
	Profile   Profile    `json:"profile"`
	Addresses []Address  `json:"addresses"`
	Documents []Document `json:"documents"`
	Accidents []Accident `json:"accidents"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// EntityUpsert is the write payload for create, save and draft updates.
// Semantic field checks live in the validation layer; the tags here only
// guard payload shape.
type EntityUpsert struct {
	Profile   Profile    `json:"profile"`
	Addresses []Address  `json:"addresses" validate:"max=20,dive"`
	Documents []Document `json:"documents" validate:"max=20,dive"`
	Accidents []Accident `json:"accidents" validate:"max=50,dive"`
	Version   *int64     `json:"version" validate:"omitempty,min=1"`
	Submit    bool       `json:"submit"`
}

var validate = validator.New()

func (r *EntityUpsert) Validate() error {
	return validate.Struct(r)
}

// ToModify converts the payload into a domain patch. Section slices are
// always set: the payload is the full working copy, not a delta.
func (r *EntityUpsert) ToModify() entities.EntityModify {
	profile := entities.Profile{
		FullName:    r.Profile.FullName,
		DateOfBirth: r.Profile.DateOfBirth,
		Phone:       r.Profile.Phone,
		Email:       r.Profile.Email,
		PAN:         r.Profile.PAN,
		GST:         r.Profile.GST,
		State:       r.Profile.State,
	}

	addresses := make([]entities.Address, 0, len(r.Addresses))
	for _, a := range r.Addresses {
		addresses = append(addresses, entities.Address{
			Line1:     a.Line1,
			Line2:     a.Line2,
			City:      a.City,
			State:     a.State,
			PinCode:   a.PinCode,
			ValidFrom: a.ValidFrom,
			ValidTo:   a.ValidTo,
		})
	}

	documents := make([]entities.Document, 0, len(r.Documents))
	for _, d := range r.Documents {
		documents = append(documents, entities.Document{
			Type:      d.Type,
			Number:    d.Number,
			ValidFrom: d.ValidFrom,
			ValidTo:   d.ValidTo,
		})
	}

	accidents := make([]entities.AccidentRecord, 0, len(r.Accidents))
	for _, a := range r.Accidents {
		accidents = append(accidents, entities.AccidentRecord{
			Type:        a.Type,
			Date:        a.Date,
			Description: a.Description,
		})
	}

	return entities.EntityModify{
		Version:   r.Version,
		Profile:   &profile,
		Addresses: &addresses,
		Documents: &documents,
		Accidents: &accidents,
	}
}

func FromDomain(e *entities.Entity) Entity {
	addresses := make([]Address, 0, len(e.Addresses))
	for _, a := range e.Addresses {
		addresses = append(addresses, Address{
			Line1:     a.Line1,
			Line2:     a.Line2,
			City:      a.City,
			State:     a.State,
			PinCode:   a.PinCode,
			ValidFrom: a.ValidFrom,
			ValidTo:   a.ValidTo,
		})
	}

	documents := make([]Document, 0, len(e.Documents))
	for _, d := range e.Documents {
		documents = append(documents, Document{
			Type:      d.Type,
			Number:    d.Number,
			ValidFrom: d.ValidFrom,
			ValidTo:   d.ValidTo,
		})
	}

	accidents := make([]Accident, 0, len(e.Accidents))
	for _, a := range e.Accidents {
		accidents = append(accidents, Accident{
			Type:        a.Type,
			Date:        a.Date,
			Description: a.Description,
		})
	}

	return Entity{
		ID:        e.ID,
		Kind:      e.Kind.String(),
		Status:    e.Status.String(),
		CreatedBy: e.CreatedBy,
		Version:   e.Version,
		Approval: Approval{
			PendingWithUserID: e.Approval.PendingWithUserID,
			PendingWith:       e.Approval.PendingWith,
			Remarks:           e.Approval.Remarks,
			CurrentStatus:     e.Approval.CurrentStatus.String(),
		},
		Profile: Profile{
			FullName:    e.Profile.FullName,
			DateOfBirth: e.Profile.DateOfBirth,
			Phone:       e.Profile.Phone,
			Email:       e.Profile.Email,
			PAN:         e.Profile.PAN,
			GST:         e.Profile.GST,
			State:       e.Profile.State,
		},
		Addresses: addresses,
		Documents: documents,
		Accidents: accidents,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// RejectRequest carries an approver's rejection remarks.
type RejectRequest struct {
	Remarks string `json:"remarks" validate:"required,max=1000"`
}

func (r *RejectRequest) Validate() error {
	return validate.Struct(r)
}

// PermissionsResponse lists the workflow actions available to the caller.
type PermissionsResponse struct {
	Actions []string `json:"actions"`
}
