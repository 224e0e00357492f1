package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Login authenticates against POST /login. The only unauthenticated
// operation; any stale credential should be cleared by the caller before
// invoking it.
func (c *Client) Login(ctx context.Context, username, password string) Outcome {
	return c.dispatch(ctx, http.MethodPost, "/login", nil, LoginRequest{
		Username: username,
		Password: password,
	})
}

// SearchPatients looks up patients by name via GET /search.
func (c *Client) SearchPatients(ctx context.Context, query string) Outcome {
	q := url.Values{}
	q.Set("q", query)
	return c.dispatch(ctx, http.MethodGet, "/search", q, nil)
}

// GetPatient fetches one patient record via GET /patient/{id}.
func (c *Client) GetPatient(ctx context.Context, id int) Outcome {
	return c.dispatch(ctx, http.MethodGet, "/patient/"+strconv.Itoa(id), nil, nil)
}

// UpdateDiagnosis overwrites a patient diagnosis via POST /patient/update.
func (c *Client) UpdateDiagnosis(ctx context.Context, id int, diagnosis string) Outcome {
	return c.dispatch(ctx, http.MethodPost, "/patient/update", nil, UpdateDiagnosisRequest{
		ID:        id,
		Diagnosis: diagnosis,
	})
}

// CreateAppointment submits a new appointment via POST /appointments/create.
func (c *Client) CreateAppointment(ctx context.Context, patientID int, date, description string) Outcome {
	return c.dispatch(ctx, http.MethodPost, "/appointments/create", nil, CreateAppointmentRequest{
		PatientID:   patientID,
		Date:        date,
		Description: description,
	})
}

// GetFHIRPatient fetches the standardized clinical-data resource for a
// patient via GET /fhir/Patient/{id}. The document is opaque to the client;
// it is displayed verbatim and never parsed beyond JSON well-formedness.
func (c *Client) GetFHIRPatient(ctx context.Context, id int) Outcome {
	return c.dispatch(ctx, http.MethodGet, fmt.Sprintf("/fhir/Patient/%d", id), nil, nil)
}
