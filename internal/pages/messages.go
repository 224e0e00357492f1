package pages

// User-visible message constants. Failures always surface as one of these
// short fixed strings (or a server-provided reason); raw errors are never
// displayed.
const (
	MsgNetworkError = "Network error."

	MsgEnterCredentials   = "Please enter both username and password."
	MsgInvalidCredentials = "Invalid username or password."
	MsgLoginFailed        = "Login failed."

	MsgEnterSearchTerm  = "Please enter a search term."
	MsgSearchFailed     = "Search failed."
	MsgNoResults        = "No results found."
	MsgInvalidSelection = "Invalid selection."

	MsgPatientViewForbidden = "You are not allowed to view this patient."
	MsgPatientLoadFailed    = "Failed to load patient."
	MsgPatientNotFound      = "Patient not found."
	MsgNotFound             = "Not found."
	MsgNotAllowed           = "You are not allowed to perform this action."

	MsgDiagnosisEmpty = "Diagnosis cannot be empty."
	MsgUpdateFailed   = "Update failed."
	MsgUpdated        = "Updated successfully!"

	MsgInvalidPatientID   = "Invalid patient ID."
	MsgSelectDate         = "Please select a date."
	MsgDescriptionEmpty   = "Description cannot be empty."
	MsgAppointmentCreated = "Appointment created successfully!"
	MsgCreationFailed     = "Creation failed."

	MsgFHIRForbidden  = "You are not allowed to view this FHIR resource."
	MsgFHIRLoadFailed = "Failed to load FHIR resource."
)
