package pages

import (
	"context"

	"github.com/rs/zerolog/log"

	"stealthcompany.com/medrec-client/internal/backend"
	"stealthcompany.com/medrec-client/internal/session"
	"stealthcompany.com/medrec-client/internal/view"
)

// FHIRViewerPage displays the standardized clinical-data resource of one
// patient verbatim. The document is opaque: it is pretty-printed as a whole
// and never partially rendered.
type FHIRViewerPage struct {
	api   *backend.Client
	store *session.Store
	doc   *view.Document
	id    int
}

func NewFHIRViewerPage(api *backend.Client, store *session.Store, id int) *FHIRViewerPage {
	return &FHIRViewerPage{
		api:   api,
		store: store,
		doc:   view.NewDocument(),
		id:    id,
	}
}

func (p *FHIRViewerPage) Doc() *view.Document {
	return p.doc
}

// Load guards the session and fetches the resource. On any failure the
// output area is left empty alongside the message.
func (p *FHIRViewerPage) Load(ctx context.Context) Route {
	if _, ok := Guard(p.store); !ok {
		return RouteLogin
	}

	o := p.api.GetFHIRPatient(ctx, p.id)
	if route, handled := resolveFailure(o, p.store, p.doc, MsgFHIRForbidden, MsgPatientNotFound, MsgFHIRLoadFailed); handled {
		p.doc.Set(view.TargetFHIR, "")
		return route
	}

	text, err := view.FormatFHIR(o.Body)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to format FHIR resource")
		p.doc.Set(view.TargetMessage, MsgFHIRLoadFailed)
		p.doc.Set(view.TargetFHIR, "")
		return RouteStay
	}

	p.doc.Set(view.TargetMessage, "")
	p.doc.Set(view.TargetFHIR, text)
	return RouteStay
}

func (p *FHIRViewerPage) GoBack() Route {
	return PatientRoute(p.id)
}
