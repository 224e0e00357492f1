package session

// RoleDoctor is the only role allowed to edit diagnoses. The client uses the
// stored role for display gating only; the backend re-checks permissions on
// every request.
const RoleDoctor = "doctor"

// Session is the credential issued at login together with the role claim.
// It is created on successful login, read on every page load and every
// authenticated request, and destroyed on logout or when the backend reports
// the credential invalid.
type Session struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
