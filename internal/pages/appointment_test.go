package pages

import (
	"context"
	"testing"

	"stealthcompany.com/medrec-client/internal/session"
	"stealthcompany.com/medrec-client/internal/view"
)

func TestAppointmentInvalidPatientIDDispatchesNothing(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "doctor", "doctor-pass")
	before := env.requestCount()

	page := NewAppointmentPage(env.api, env.store)
	route := page.Create(context.Background(), 0, "2026-09-01T10:00", "Checkup")

	if route != RouteStay {
		t.Fatalf("Expected to stay, got %q", route)
	}
	if got := page.Doc().Get(view.TargetMessage); got != MsgInvalidPatientID {
		t.Errorf("Expected %q, got %q", MsgInvalidPatientID, got)
	}
	if env.requestCount() != before {
		t.Errorf("Expected no request, got %d", env.requestCount()-before)
	}
}

func TestAppointmentValidationMessages(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "doctor", "doctor-pass")
	before := env.requestCount()

	page := NewAppointmentPage(env.api, env.store)

	tests := []struct {
		name        string
		patientID   int
		date        string
		description string
		expected    string
	}{
		{"Missing date", 1, "", "Checkup", MsgSelectDate},
		{"Unparsable date", 1, "tomorrow", "Checkup", MsgSelectDate},
		{"Empty description", 1, "2026-09-01T10:00", "   ", MsgDescriptionEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page.Create(context.Background(), tt.patientID, tt.date, tt.description)
			if got := page.Doc().Get(view.TargetMessage); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}

	if env.requestCount() != before {
		t.Errorf("Expected no requests for invalid forms, got %d", env.requestCount()-before)
	}
}

func TestAppointmentCreateSuccess(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "nurse", "nurse-pass")

	page := NewAppointmentPage(env.api, env.store)
	route := page.Create(context.Background(), 1, "2026-09-01T10:00", "Annual checkup")

	if route != RouteStay {
		t.Fatalf("Expected to stay, got %q", route)
	}
	if got := page.Doc().Get(view.TargetMessage); got != MsgAppointmentCreated {
		t.Errorf("Expected %q, got %q", MsgAppointmentCreated, got)
	}
	if got := page.Doc().Get(view.TargetDescription); got != "" {
		t.Errorf("Expected description input cleared, got %q", got)
	}

	stored := env.mock.Appointments()
	if len(stored) != 1 {
		t.Fatalf("Expected one stored appointment, got %d", len(stored))
	}
	if stored[0].Date != "2026-09-01T10:00:00" {
		t.Errorf("Expected seconds-precision wire date, got %q", stored[0].Date)
	}
}

func TestAppointmentUnknownPatient(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "doctor", "doctor-pass")

	page := NewAppointmentPage(env.api, env.store)
	page.Create(context.Background(), 99, "2026-09-01T10:00", "Checkup")

	if got := page.Doc().Get(view.TargetMessage); got != MsgPatientNotFound {
		t.Errorf("Expected %q, got %q", MsgPatientNotFound, got)
	}
}

func TestAppointmentInvalidSessionRedirects(t *testing.T) {
	env := newTestEnv(t)
	if err := env.store.Save(session.Session{Token: "bogus", Role: "nurse"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	page := NewAppointmentPage(env.api, env.store)
	route := page.Create(context.Background(), 1, "2026-09-01T10:00", "Checkup")

	if route != RouteLogin {
		t.Fatalf("Expected login redirect on 401, got %q", route)
	}

	sess, err := env.store.Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sess != nil {
		t.Errorf("Expected session cleared after 401, got %+v", sess)
	}
}
