package devserver

// User is a demo account. Passwords are plain text; this server never runs
// outside local development.
type User struct {
	Username string
	Password string
	Role     string
}

// PatientRecord is the server-side patient shape. insurance_number is the
// legacy identifier; newer records carry mrn.
type PatientRecord struct {
	ID              int    `json:"id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Birthdate       string `json:"birthdate"`
	Diagnosis       string `json:"diagnosis,omitempty"`
	MRN             string `json:"mrn,omitempty"`
	InsuranceNumber string `json:"insurance_number,omitempty"`
}

// Appointment is a stored appointment submission.
type Appointment struct {
	PatientID   int    `json:"patient_id"`
	CreatedBy   string `json:"created_by"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

func seedUsers() map[string]User {
	return map[string]User{
		"doctor": {Username: "doctor", Password: "doctor-pass", Role: "doctor"},
		"nurse":  {Username: "nurse", Password: "nurse-pass", Role: "nurse"},
		"admin":  {Username: "admin", Password: "admin-pass", Role: "admin"},
	}
}

func seedPatients() map[int]*PatientRecord {
	return map[int]*PatientRecord{
		1: {
			ID:        1,
			FirstName: "Anna",
			LastName:  "Miller",
			Birthdate: "1990-04-02",
			Diagnosis: "Seasonal allergies",
			MRN:       "MRN-1001",
		},
		2: {
			ID:              2,
			FirstName:       "Ben",
			LastName:        "Schneider",
			Birthdate:       "1978-11-23",
			Diagnosis:       "Hypertension",
			InsuranceNumber: "INS-4420",
		},
		3: {
			ID:        3,
			FirstName: "Clara",
			LastName:  "Weber",
			Birthdate: "2001-06-15",
		},
	}
}
