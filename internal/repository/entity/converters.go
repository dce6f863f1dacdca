package entity

import (
	"encoding/json"
	"fmt"

	"tms/internal/entities"
)

func ToDomain(e *EntityDB, documents []DocumentDB) (*entities.Entity, error) {
	if e == nil {
		return nil, nil
	}

	var profile ProfileJSON
	if err := json.Unmarshal(e.Profile, &profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	var addresses []AddressJSON
	if err := json.Unmarshal(e.Addresses, &addresses); err != nil {
		return nil, fmt.Errorf("decode addresses: %w", err)
	}

	var accidents []AccidentJSON
	if err := json.Unmarshal(e.Accidents, &accidents); err != nil {
		return nil, fmt.Errorf("decode accidents: %w", err)
	}

	entity := &entities.Entity{
		ID:        e.ID,
		Kind:      entities.EntityKind(e.Kind),
		Status:    entities.EntityStatus(e.Status),
		CreatedBy: e.CreatedBy,
		Version:   e.Version,
		Approval: entities.ApprovalState{
			PendingWithUserID: e.PendingWithUserID,
			PendingWith:       e.PendingWith,
			Remarks:           e.Remarks,
			CurrentStatus:     entities.ApprovalOutcome(e.ApprovalStatus),
		},
		Profile: entities.Profile{
			FullName:    profile.FullName,
			DateOfBirth: profile.DateOfBirth,
			Phone:       profile.Phone,
			Email:       profile.Email,
			PAN:         profile.PAN,
			GST:         profile.GST,
			State:       profile.State,
		},
		Addresses: make([]entities.Address, 0, len(addresses)),
		Documents: make([]entities.Document, 0, len(documents)),
		Accidents: make([]entities.AccidentRecord, 0, len(accidents)),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}

	for _, a := range addresses {
		entity.Addresses = append(entity.Addresses, entities.Address{
			Line1:     a.Line1,
			Line2:     a.Line2,
			City:      a.City,
			State:     a.State,
			PinCode:   a.PinCode,
			ValidFrom: a.ValidFrom,
			ValidTo:   a.ValidTo,
		})
	}
	for _, d := range documents {
		entity.Documents = append(entity.Documents, entities.Document{
			Type:      d.Type,
			Number:    d.Number,
			ValidFrom: d.ValidFrom,
			ValidTo:   d.ValidTo,
		})
	}
	for _, a := range accidents {
		entity.Accidents = append(entity.Accidents, entities.AccidentRecord{
			Type:        a.Type,
			Date:        a.Date,
			Description: a.Description,
		})
	}

	return entity, nil
}

func profileToJSON(p entities.Profile) ([]byte, error) {
	return json.Marshal(ProfileJSON{
		FullName:    p.FullName,
		DateOfBirth: p.DateOfBirth,
		Phone:       p.Phone,
		Email:       p.Email,
		PAN:         p.PAN,
		GST:         p.GST,
		State:       p.State,
	})
}

func addressesToJSON(addresses []entities.Address) ([]byte, error) {
	rows := make([]AddressJSON, 0, len(addresses))
	for _, a := range addresses {
		rows = append(rows, AddressJSON{
			Line1:     a.Line1,
			Line2:     a.Line2,
			City:      a.City,
			State:     a.State,
			PinCode:   a.PinCode,
			ValidFrom: a.ValidFrom,
			ValidTo:   a.ValidTo,
		})
	}
	return json.Marshal(rows)
}

func accidentsToJSON(accidents []entities.AccidentRecord) ([]byte, error) {
	rows := make([]AccidentJSON, 0, len(accidents))
	for _, a := range accidents {
		rows = append(rows, AccidentJSON{
			Type:        a.Type,
			Date:        a.Date,
			Description: a.Description,
		})
	}
	return json.Marshal(rows)
}

func documentsFromDomain(documents []entities.Document) []DocumentDB {
	rows := make([]DocumentDB, 0, len(documents))
	for _, d := range documents {
		rows = append(rows, DocumentDB{
			Type:      d.Type,
			Number:    d.Number,
			ValidFrom: d.ValidFrom,
			ValidTo:   d.ValidTo,
		})
	}
	return rows
}
