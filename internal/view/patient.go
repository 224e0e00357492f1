package view

import (
	"bytes"
	"encoding/json"
	"fmt"

	"stealthcompany.com/medrec-client/internal/backend"
)

// IdentifierUnavailable is displayed when a record carries neither the
// legacy nor the current identifier field.
const IdentifierUnavailable = "Not available"

// Patient view targets.
const (
	TargetName      = "name"
	TargetDiagnosis = "diagnosis"
	TargetBirthdate = "birthdate"
	TargetInsurance = "insurance"
	TargetMessage   = "message"
	TargetFHIR      = "fhirOutput"

	// Input controls modeled as document targets.
	TargetNewDiagnosis = "newDiagnosis"
	TargetDescription  = "description"
)

// RenderPatient writes the patient fields into the document. Re-invoking
// with the same payload produces the same displayed state.
func RenderPatient(d *Document, p backend.Patient) {
	d.Set(TargetName, fmt.Sprintf("%s %s", p.FirstName, p.LastName))
	d.Set(TargetDiagnosis, p.Diagnosis)
	d.Set(TargetBirthdate, p.Birthdate)
	d.Set(TargetInsurance, Identifier(p))
}

// Identifier resolves the displayed patient identifier: the legacy
// insurance number wins when present, then the medical record number, then
// a fixed placeholder.
func Identifier(p backend.Patient) string {
	if p.InsuranceNumber != "" {
		return p.InsuranceNumber
	}
	if p.MRN != "" {
		return p.MRN
	}
	return IdentifierUnavailable
}

// FormatFHIR serializes an opaque FHIR document as indented text for
// verbatim display. The structure is never partially rendered or mutated.
func FormatFHIR(raw json.RawMessage) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "    "); err != nil {
		return "", fmt.Errorf("failed to format FHIR resource: %w", err)
	}
	return buf.String(), nil
}
