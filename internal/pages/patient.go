package pages

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"

	"stealthcompany.com/medrec-client/internal/backend"
	"stealthcompany.com/medrec-client/internal/metrics"
	"stealthcompany.com/medrec-client/internal/session"
	"stealthcompany.com/medrec-client/internal/view"
)

// PatientPage shows one patient record and, for doctors, the diagnosis-edit
// control. Records are re-fetched on every load, never cached across pages.
type PatientPage struct {
	api   *backend.Client
	store *session.Store
	doc   *view.Document
	id    int
	role  string
}

func NewPatientPage(api *backend.Client, store *session.Store, id int) *PatientPage {
	return &PatientPage{
		api:   api,
		store: store,
		doc:   view.NewDocument(),
		id:    id,
	}
}

func (p *PatientPage) Doc() *view.Document {
	return p.doc
}

// Load guards the session, fetches the record and renders it. The role gate
// runs after a successful render: non-doctors get no diagnosis-edit control
// at all. The gate is display-only — the backend re-checks the permission on
// every update and the 403 path below stays fully handled regardless.
func (p *PatientPage) Load(ctx context.Context) Route {
	sess, ok := Guard(p.store)
	if !ok {
		return RouteLogin
	}
	p.role = sess.Role

	o := p.api.GetPatient(ctx, p.id)
	if route, handled := resolveFailure(o, p.store, p.doc, MsgPatientViewForbidden, MsgPatientNotFound, MsgPatientLoadFailed); handled {
		return route
	}

	var patient backend.Patient
	if err := json.Unmarshal(o.Body, &patient); err != nil {
		log.Warn().Err(err).Msg("Unexpected patient payload shape")
		p.doc.Set(view.TargetMessage, MsgPatientLoadFailed)
		return RouteStay
	}

	view.RenderPatient(p.doc, patient)

	if p.role == session.RoleDoctor {
		p.doc.Set(view.TargetNewDiagnosis, "")
	} else {
		p.doc.Remove(view.TargetNewDiagnosis)
	}

	return RouteStay
}

// UpdateDiagnosis submits a new diagnosis. The displayed value only changes
// after the backend confirms with a 2xx; there is no optimistic rendering.
func (p *PatientPage) UpdateDiagnosis(ctx context.Context, diagnosis string) Route {
	p.doc.Set(view.TargetMessage, "")

	diagnosis = strings.TrimSpace(diagnosis)
	if diagnosis == "" {
		metrics.RecordValidationRejection("update_diagnosis")
		p.doc.Set(view.TargetMessage, MsgDiagnosisEmpty)
		return RouteStay
	}

	o := p.api.UpdateDiagnosis(ctx, p.id, diagnosis)
	if route, handled := resolveFailure(o, p.store, p.doc, MsgNotAllowed, MsgPatientNotFound, MsgUpdateFailed); handled {
		return route
	}

	p.doc.Set(view.TargetDiagnosis, diagnosis)
	p.doc.Set(view.TargetNewDiagnosis, "")
	p.doc.Set(view.TargetMessage, MsgUpdated)
	return RouteStay
}

func (p *PatientPage) OpenFHIR() Route {
	return FHIRRoute(p.id)
}

func (p *PatientPage) GoBack() Route {
	return RouteDashboard
}
