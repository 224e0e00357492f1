package backend

import (
	"encoding/json"
	"net/http"
)

// OutcomeKind is the fixed set of classified results for a dispatched
// request. Every page maps each kind to a terminal display action or a
// navigation; outcomes never propagate past the page boundary.
type OutcomeKind int

const (
	// Success carries the response payload for rendering.
	Success OutcomeKind = iota
	// InvalidSession means the backend rejected the credential (401).
	// Stored session state must be cleared and the user sent back to login.
	InvalidSession
	// Forbidden means the action is not permitted for this role (403).
	// The session stays intact.
	Forbidden
	// NotFound means the requested entity does not exist (404).
	NotFound
	// Rejected covers every other non-2xx status, with the server-provided
	// reason when the payload carries one.
	Rejected
	// TransportFailure means the request never completed or the response
	// could not be read as JSON.
	TransportFailure
)

// String returns the metrics label for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "success"
	case InvalidSession:
		return "invalid_session"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not_found"
	case Rejected:
		return "rejected"
	default:
		return "transport_failure"
	}
}

// Outcome is the classified result of one dispatched request.
type Outcome struct {
	Kind   OutcomeKind
	Status int
	// Body is the raw success payload; only set for Success.
	Body json.RawMessage
	// Reason is the server-provided error message for Rejected; empty when
	// the payload carried none, in which case the page supplies its own
	// fallback message.
	Reason string
}

// Classify maps a response (or transport error) to exactly one Outcome.
// This is the single status-to-UI-state policy for the whole client; every
// protected endpoint goes through it so invalid-session and error-message
// handling stay uniform. Status classification is strict and happens before
// any attempt to read domain fields from the body.
func Classify(resp *Response, err error) Outcome {
	if err != nil {
		return Outcome{Kind: TransportFailure}
	}

	switch resp.Status {
	case http.StatusUnauthorized:
		return Outcome{Kind: InvalidSession, Status: resp.Status}
	case http.StatusForbidden:
		return Outcome{Kind: Forbidden, Status: resp.Status}
	case http.StatusNotFound:
		return Outcome{Kind: NotFound, Status: resp.Status}
	}

	if resp.Status < 200 || resp.Status > 299 {
		var body errorBody
		// Error bodies may be empty or non-JSON; the page fallback covers that.
		_ = json.Unmarshal(resp.Body, &body)
		return Outcome{Kind: Rejected, Status: resp.Status, Reason: body.Error}
	}

	// A 2xx response that is not valid JSON cannot be rendered; treat it the
	// same as a request that never completed.
	if !json.Valid(resp.Body) {
		return Outcome{Kind: TransportFailure, Status: resp.Status}
	}

	return Outcome{Kind: Success, Status: resp.Status, Body: resp.Body}
}
