package dto

import (
	"encoding/json"
	"testing"
	"time"

	"makerskills-api/modules/participants/entity"

	"github.com/google/uuid"
)

// The registration form posts camelCase keys; every field must bind.
func TestRegisterParticipantRequestBindsRegistrationForm(t *testing.T) {
	payload := `{
		"firstName": "Sara",
		"lastName":  "Bennis",
		"email":     "sara@example.com",
		"phone":     "+212600000000",
		"address":   "12 Rue des Ecoles",
		"city":      "Casablanca",
		"country":   "Morocco",
		"eventId":   "3f1c2a9e-8a4b-4c21-9d5e-0f6a7b8c9d0e"
	}`

	var req RegisterParticipantRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.FirstName != "Sara" || req.LastName != "Bennis" {
		t.Errorf("name = %q %q", req.FirstName, req.LastName)
	}
	if req.Email != "sara@example.com" {
		t.Errorf("email = %q", req.Email)
	}
	if req.EventID != "3f1c2a9e-8a4b-4c21-9d5e-0f6a7b8c9d0e" {
		t.Errorf("eventId = %q", req.EventID)
	}
	if req.WorkshopID != "" {
		t.Errorf("workshopId = %q, want empty", req.WorkshopID)
	}
	if req.Phone != "+212600000000" || req.City != "Casablanca" || req.Country != "Morocco" {
		t.Errorf("contact fields = %+v", req)
	}
}

// Responses serialize participant fields with the same camelCase keys the
// frontend reads back.
func TestEventGroupSerializesCamelCaseKeys(t *testing.T) {
	price := 150.0
	group := EventGroup{
		EventID:   uuid.MustParse("3f1c2a9e-8a4b-4c21-9d5e-0f6a7b8c9d0e"),
		EventName: "Robotics 101",
		Price:     &price,
		Participants: []entity.Participant{{
			ID:        uuid.New(),
			FirstName: "Sara",
			LastName:  "Bennis",
			Email:     "sara@example.com",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}},
	}

	raw, err := json.Marshal(group)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"eventId", "eventName", "participants"} {
		if _, ok := out[key]; !ok {
			t.Errorf("missing key %q in %s", key, raw)
		}
	}
	participants, ok := out["participants"].([]any)
	if !ok || len(participants) != 1 {
		t.Fatalf("participants = %v", out["participants"])
	}
	first := participants[0].(map[string]any)
	if first["firstName"] != "Sara" || first["lastName"] != "Bennis" {
		t.Errorf("participant keys = %v", first)
	}
	if _, snake := first["first_name"]; snake {
		t.Errorf("snake_case key leaked into %v", first)
	}
}
