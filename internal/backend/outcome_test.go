package backend

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		resp         *Response
		err          error
		expectedKind OutcomeKind
		expectedMsg  string
	}{
		{
			name:         "Transport error",
			resp:         nil,
			err:          errors.New("connection refused"),
			expectedKind: TransportFailure,
		},
		{
			name:         "401 is invalid session",
			resp:         &Response{Status: 401, Body: []byte(`{"error":"Invalid token"}`)},
			expectedKind: InvalidSession,
		},
		{
			name:         "403 is forbidden",
			resp:         &Response{Status: 403, Body: []byte(`{"error":"Not permitted"}`)},
			expectedKind: Forbidden,
		},
		{
			name:         "404 is not found",
			resp:         &Response{Status: 404, Body: []byte(`{"error":"Patient not found"}`)},
			expectedKind: NotFound,
		},
		{
			name:         "422 is rejected with server reason",
			resp:         &Response{Status: 422, Body: []byte(`{"error":"Invalid diagnosis"}`)},
			expectedKind: Rejected,
			expectedMsg:  "Invalid diagnosis",
		},
		{
			name:         "500 with non-JSON body is rejected without reason",
			resp:         &Response{Status: 500, Body: []byte("Internal Server Error")},
			expectedKind: Rejected,
			expectedMsg:  "",
		},
		{
			name:         "401 with success-shaped body is still invalid session",
			resp:         &Response{Status: 401, Body: []byte(`{"results":[]}`)},
			expectedKind: InvalidSession,
		},
		{
			name:         "200 with valid JSON is success",
			resp:         &Response{Status: 200, Body: []byte(`{"results":[]}`)},
			expectedKind: Success,
		},
		{
			name:         "201 is success",
			resp:         &Response{Status: 201, Body: []byte(`{"message":"Appointment created"}`)},
			expectedKind: Success,
		},
		{
			name:         "200 with malformed body is transport failure",
			resp:         &Response{Status: 200, Body: []byte("<html>")},
			expectedKind: TransportFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := Classify(tt.resp, tt.err)

			if outcome.Kind != tt.expectedKind {
				t.Errorf("Expected kind %s, got %s", tt.expectedKind, outcome.Kind)
			}
			if outcome.Kind == Rejected && outcome.Reason != tt.expectedMsg {
				t.Errorf("Expected reason %q, got %q", tt.expectedMsg, outcome.Reason)
			}
			if outcome.Kind == Success && len(outcome.Body) == 0 {
				t.Error("Expected success outcome to carry the payload")
			}
		})
	}
}
