package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stealthcompany.com/medrec-client/internal/session"
)

func newTestClient(t *testing.T, backendURL string) (*Client, *session.Store) {
	t.Helper()
	store := session.NewStore(t.TempDir(), backendURL)
	return NewClient(backendURL, 5*time.Second, store), store
}

func TestDispatchAttachesBearerCredential(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, store := newTestClient(t, server.URL)
	if err := store.Save(session.Session{Token: "tok-1", Role: "doctor"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	outcome := client.SearchPatients(context.Background(), "miller")
	if outcome.Kind != Success {
		t.Fatalf("Expected success, got %s", outcome.Kind)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("Expected bearer header, got %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("Expected X-Request-ID header to be set")
	}
}

func TestDispatchJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody UpdateDiagnosisRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, store := newTestClient(t, server.URL)
	store.Save(session.Session{Token: "tok-1", Role: "doctor"})

	outcome := client.UpdateDiagnosis(context.Background(), 7, "Influenza")
	if outcome.Kind != Success {
		t.Fatalf("Expected success, got %s", outcome.Kind)
	}
	if gotContentType != "application/json" {
		t.Errorf("Expected JSON content type, got %q", gotContentType)
	}
	if gotBody.ID != 7 || gotBody.Diagnosis != "Influenza" {
		t.Errorf("Expected encoded request body, got %+v", gotBody)
	}
}

func TestDispatchNoBodyOmitsContentType(t *testing.T) {
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, store := newTestClient(t, server.URL)
	store.Save(session.Session{Token: "tok-1", Role: "nurse"})

	client.GetPatient(context.Background(), 1)
	if gotContentType != "" {
		t.Errorf("Expected no content type on GET, got %q", gotContentType)
	}
}

func TestDispatchTransportFailure(t *testing.T) {
	// Closed server: connection refused.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, _ := newTestClient(t, server.URL)

	outcome := client.GetPatient(context.Background(), 1)
	if outcome.Kind != TransportFailure {
		t.Errorf("Expected transport failure, got %s", outcome.Kind)
	}
}

func TestDispatchNoRetries(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Database error"}`))
	}))
	defer server.Close()

	client, store := newTestClient(t, server.URL)
	store.Save(session.Session{Token: "tok-1", Role: "doctor"})

	outcome := client.CreateAppointment(context.Background(), 1, "2026-09-01T10:00:00", "Checkup")
	if outcome.Kind != Rejected {
		t.Fatalf("Expected rejected, got %s", outcome.Kind)
	}
	if outcome.Reason != "Database error" {
		t.Errorf("Expected server reason, got %q", outcome.Reason)
	}
	if requests != 1 {
		t.Errorf("Expected exactly one request attempt, got %d", requests)
	}
}

func TestInFlightGuard(t *testing.T) {
	client, _ := newTestClient(t, "http://localhost:0")

	client.inFlight.Store(true)
	_, err := client.do(context.Background(), http.MethodGet, "/search", nil, nil)
	if err != ErrRequestInFlight {
		t.Errorf("Expected ErrRequestInFlight, got %v", err)
	}

	outcome := client.dispatch(context.Background(), http.MethodGet, "/search", nil, nil)
	if outcome.Kind != Rejected || outcome.Reason != "Request already in progress." {
		t.Errorf("Expected in-flight rejection, got %+v", outcome)
	}
}

func TestDispatchTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	store := session.NewStore(t.TempDir(), server.URL)
	client := NewClient(server.URL, 50*time.Millisecond, store)

	outcome := client.GetPatient(context.Background(), 1)
	if outcome.Kind != TransportFailure {
		t.Errorf("Expected transport failure on timeout, got %s", outcome.Kind)
	}
}
