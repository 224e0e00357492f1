package devserver

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func clinicalRole(role string) bool {
	return role == "doctor" || role == "nurse"
}

func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	s.mu.RLock()
	user, ok := s.users[strings.TrimSpace(req.Username)]
	s.mu.RUnlock()

	// Unknown user and wrong password are indistinguishable on purpose.
	if !ok || user.Password != req.Password {
		log.Info().Str("username", req.Username).Msg("Login rejected")
		writeError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	token, err := s.issueToken(user.Username, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("Failed to sign token")
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	log.Info().Str("username", user.Username).Str("role", user.Role).Msg("Login succeeded")
	writeJSON(w, http.StatusOK, map[string]string{
		"token": token,
		"role":  user.Role,
	})
}

func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	_, role := userFromContext(r.Context())
	if !clinicalRole(role) {
		writeError(w, http.StatusForbidden, "Not permitted")
		return
	}

	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	if query == "" {
		writeError(w, http.StatusBadRequest, "Missing search term")
		return
	}

	s.mu.RLock()
	var results []map[string]any
	for _, p := range s.patients {
		first := strings.ToLower(p.FirstName)
		last := strings.ToLower(p.LastName)
		if strings.Contains(first, query) || strings.Contains(last, query) {
			results = append(results, map[string]any{
				"id":         p.ID,
				"first_name": p.FirstName,
				"last_name":  p.LastName,
			})
		}
	}
	s.mu.RUnlock()

	sort.Slice(results, func(i, j int) bool {
		return results[i]["id"].(int) < results[j]["id"].(int)
	})
	if results == nil {
		results = []map[string]any{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"query":   query,
		"results": results,
	})
}

func (s *Server) getPatientHandler(w http.ResponseWriter, r *http.Request) {
	_, role := userFromContext(r.Context())
	if !clinicalRole(role) {
		writeError(w, http.StatusForbidden, "Not permitted")
		return
	}

	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	s.mu.RLock()
	patient, ok := s.patients[id]
	s.mu.RUnlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Patient not found")
		return
	}

	response := map[string]any{
		"id":         patient.ID,
		"first_name": patient.FirstName,
		"last_name":  patient.LastName,
		"birthdate":  patient.Birthdate,
	}
	if patient.MRN != "" {
		response["mrn"] = patient.MRN
	}
	if patient.InsuranceNumber != "" {
		response["insurance_number"] = patient.InsuranceNumber
	}
	// The diagnosis is only disclosed to doctors.
	if role == "doctor" {
		response["diagnosis"] = patient.Diagnosis
	}

	writeJSON(w, http.StatusOK, response)
}

func (s *Server) updatePatientHandler(w http.ResponseWriter, r *http.Request) {
	username, role := userFromContext(r.Context())
	if role != "doctor" {
		writeError(w, http.StatusForbidden, "Not permitted")
		return
	}

	var req struct {
		ID        int    `json:"id"`
		Diagnosis string `json:"diagnosis"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing JSON body")
		return
	}

	if req.ID <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid patient ID")
		return
	}
	diagnosis := strings.TrimSpace(req.Diagnosis)
	if diagnosis == "" {
		writeError(w, http.StatusBadRequest, "Invalid diagnosis")
		return
	}

	s.mu.Lock()
	patient, ok := s.patients[req.ID]
	if ok {
		patient.Diagnosis = diagnosis
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Patient not found")
		return
	}

	log.Info().Str("username", username).Int("patient_id", req.ID).Msg("Diagnosis updated")
	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Patient updated successfully",
		"patient_id": req.ID,
		"diagnosis":  diagnosis,
	})
}

func (s *Server) createAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	username, role := userFromContext(r.Context())
	if !clinicalRole(role) {
		writeError(w, http.StatusForbidden, "Not permitted")
		return
	}

	var req struct {
		PatientID   int    `json:"patient_id"`
		Date        string `json:"date"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing JSON body")
		return
	}

	if req.PatientID <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid patient ID")
		return
	}
	if _, err := time.Parse("2006-01-02T15:04:05", req.Date); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date")
		return
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		writeError(w, http.StatusBadRequest, "Invalid description")
		return
	}

	s.mu.Lock()
	_, ok := s.patients[req.PatientID]
	if ok {
		s.appointments = append(s.appointments, Appointment{
			PatientID:   req.PatientID,
			CreatedBy:   username,
			Date:        req.Date,
			Description: description,
		})
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Patient not found")
		return
	}

	log.Info().Str("username", username).Int("patient_id", req.PatientID).Msg("Appointment created")
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":     "Appointment created",
		"patient_id":  req.PatientID,
		"date":        req.Date,
		"description": description,
	})
}

func (s *Server) getFHIRPatientHandler(w http.ResponseWriter, r *http.Request) {
	_, role := userFromContext(r.Context())
	// Need-to-know: only clinical roles may read the FHIR projection.
	if !clinicalRole(role) {
		writeError(w, http.StatusForbidden, "Not permitted")
		return
	}

	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	s.mu.RLock()
	patient, ok := s.patients[id]
	s.mu.RUnlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Patient not found")
		return
	}

	// Minimal FHIR Patient: identity only, no diagnosis, no insurance data.
	fhirPatient := map[string]any{
		"resourceType": "Patient",
		"id":           strconv.Itoa(patient.ID),
		"name": []map[string]any{
			{"text": patient.FirstName + " " + patient.LastName},
		},
		"birthDate": patient.Birthdate,
		"identifier": []map[string]any{
			{"system": "urn:mrn", "value": patient.MRN},
		},
	}

	writeJSON(w, http.StatusOK, fhirPatient)
}
