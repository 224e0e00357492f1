package pages

import (
	"context"
	"strings"
	"time"

	"stealthcompany.com/medrec-client/internal/backend"
	"stealthcompany.com/medrec-client/internal/metrics"
	"stealthcompany.com/medrec-client/internal/session"
	"stealthcompany.com/medrec-client/internal/view"
)

// Appointment dates are entered without seconds; the backend expects full
// ISO-8601 date-times.
const (
	appointmentInputLayout = "2006-01-02T15:04"
	appointmentWireLayout  = "2006-01-02T15:04:05"
)

// AppointmentPage creates appointments. Write-only from the client's
// perspective: nothing is fetched or cached here.
type AppointmentPage struct {
	api   *backend.Client
	store *session.Store
	doc   *view.Document
}

func NewAppointmentPage(api *backend.Client, store *session.Store) *AppointmentPage {
	return &AppointmentPage{
		api:   api,
		store: store,
		doc:   view.NewDocument(),
	}
}

func (p *AppointmentPage) Doc() *view.Document {
	return p.doc
}

// Load runs the session guard.
func (p *AppointmentPage) Load() Route {
	if _, ok := Guard(p.store); !ok {
		return RouteLogin
	}
	return RouteStay
}

// Create validates locally, then submits exactly one creation request. Any
// validation failure blocks the dispatch entirely, so a rejected form never
// reaches the backend.
func (p *AppointmentPage) Create(ctx context.Context, patientID int, date, description string) Route {
	p.doc.Set(view.TargetMessage, "")

	if patientID <= 0 {
		metrics.RecordValidationRejection("create_appointment")
		p.doc.Set(view.TargetMessage, MsgInvalidPatientID)
		return RouteStay
	}

	wireDate, ok := normalizeAppointmentDate(date)
	if !ok {
		metrics.RecordValidationRejection("create_appointment")
		p.doc.Set(view.TargetMessage, MsgSelectDate)
		return RouteStay
	}

	description = strings.TrimSpace(description)
	if description == "" {
		metrics.RecordValidationRejection("create_appointment")
		p.doc.Set(view.TargetMessage, MsgDescriptionEmpty)
		return RouteStay
	}

	o := p.api.CreateAppointment(ctx, patientID, wireDate, description)
	if route, handled := resolveFailure(o, p.store, p.doc, MsgNotAllowed, MsgPatientNotFound, MsgCreationFailed); handled {
		return route
	}

	p.doc.Set(view.TargetDescription, "")
	p.doc.Set(view.TargetMessage, MsgAppointmentCreated)
	return RouteStay
}

func (p *AppointmentPage) GoBack() Route {
	return RouteDashboard
}

// normalizeAppointmentDate accepts a minute-precision date-time (the input
// form) or a full one and returns the seconds-precision wire form.
func normalizeAppointmentDate(date string) (string, bool) {
	date = strings.TrimSpace(date)
	if date == "" {
		return "", false
	}

	if t, err := time.Parse(appointmentInputLayout, date); err == nil {
		return t.Format(appointmentWireLayout), true
	}
	if t, err := time.Parse(appointmentWireLayout, date); err == nil {
		return t.Format(appointmentWireLayout), true
	}
	return "", false
}
