// Package devserver is a development stand-in for the clinical record
// backend. It implements the same endpoint contract the client consumes,
// with in-memory data and HS256 tokens, so the client and its flow tests can
// run without the real service.
package devserver

import (
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server holds the in-memory state of the mock backend.
type Server struct {
	signingKey []byte
	tokenTTL   time.Duration

	mu           sync.RWMutex
	users        map[string]User
	patients     map[int]*PatientRecord
	appointments []Appointment
}

// New creates a mock backend seeded with demo users and patients.
func New(signingKey []byte) *Server {
	return &Server{
		signingKey: signingKey,
		tokenTTL:   time.Hour,
		users:      seedUsers(),
		patients:   seedPatients(),
	}
}

// Routes configures and returns the HTTP router.
func (s *Server) Routes() *mux.Router {
	r := mux.NewRouter()

	r.Use(s.authMiddleware)

	r.HandleFunc("/login", s.loginHandler).Methods("POST")
	r.HandleFunc("/search", s.searchHandler).Methods("GET")
	r.HandleFunc("/patient/{id:[0-9]+}", s.getPatientHandler).Methods("GET")
	r.HandleFunc("/patient/update", s.updatePatientHandler).Methods("POST")
	r.HandleFunc("/appointments/create", s.createAppointmentHandler).Methods("POST")
	r.HandleFunc("/fhir/Patient/{id:[0-9]+}", s.getFHIRPatientHandler).Methods("GET")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}

// Appointments returns a copy of the stored appointments, for tests.
func (s *Server) Appointments() []Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}
