package backend

// Patient is the client view of a patient record. Read-only except for
// Diagnosis, which doctors may overwrite. insurance_number is the legacy
// identifier field; current records carry mrn instead.
type Patient struct {
	ID              int    `json:"id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Diagnosis       string `json:"diagnosis,omitempty"`
	Birthdate       string `json:"birthdate,omitempty"`
	InsuranceNumber string `json:"insurance_number,omitempty"`
	MRN             string `json:"mrn,omitempty"`
}

// LoginRequest is the body of POST /login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the success body of POST /login
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// SearchResponse is the success body of GET /search
type SearchResponse struct {
	Results []Patient `json:"results"`
}

// UpdateDiagnosisRequest is the body of POST /patient/update
type UpdateDiagnosisRequest struct {
	ID        int    `json:"id"`
	Diagnosis string `json:"diagnosis"`
}

// CreateAppointmentRequest is the body of POST /appointments/create
type CreateAppointmentRequest struct {
	PatientID   int    `json:"patient_id"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// errorBody is the error payload shape shared by all backend failures.
// Error bodies are not guaranteed to match success-payload shapes, so status
// classification always happens before this is read.
type errorBody struct {
	Error string `json:"error"`
}
