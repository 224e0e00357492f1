package view

import (
	"encoding/json"
	"testing"

	"stealthcompany.com/medrec-client/internal/backend"
)

func TestIdentifierResolution(t *testing.T) {
	tests := []struct {
		name     string
		patient  backend.Patient
		expected string
	}{
		{
			name:     "Legacy insurance number wins",
			patient:  backend.Patient{InsuranceNumber: "X", MRN: "Y"},
			expected: "X",
		},
		{
			name:     "MRN used when no insurance number",
			patient:  backend.Patient{MRN: "Y"},
			expected: "Y",
		},
		{
			name:     "Placeholder when neither present",
			patient:  backend.Patient{},
			expected: "Not available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Identifier(tt.patient); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestRenderPatient(t *testing.T) {
	d := NewDocument()
	RenderPatient(d, backend.Patient{
		ID:        3,
		FirstName: "Anna",
		LastName:  "Miller",
		Diagnosis: "Healthy",
		Birthdate: "1990-04-02",
		MRN:       "MRN-3",
	})

	if got := d.Get(TargetName); got != "Anna Miller" {
		t.Errorf("Expected full name, got %q", got)
	}
	if got := d.Get(TargetInsurance); got != "MRN-3" {
		t.Errorf("Expected MRN identifier, got %q", got)
	}
}

func TestFormatFHIRVerbatim(t *testing.T) {
	raw := json.RawMessage(`{"resourceType":"Patient","id":"3","name":[{"text":"Anna Miller"}]}`)

	text, err := FormatFHIR(raw)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Round-trip: indentation must not change the document.
	var orig, formatted any
	if err := json.Unmarshal(raw, &orig); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := json.Unmarshal([]byte(text), &formatted); err != nil {
		t.Fatalf("Formatted output is not valid JSON: %v", err)
	}

	origBytes, _ := json.Marshal(orig)
	formattedBytes, _ := json.Marshal(formatted)
	if string(origBytes) != string(formattedBytes) {
		t.Errorf("Expected verbatim content, got %s", text)
	}
}
