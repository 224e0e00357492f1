package pages

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"stealthcompany.com/medrec-client/internal/backend"
	"stealthcompany.com/medrec-client/internal/metrics"
	"stealthcompany.com/medrec-client/internal/session"
	"stealthcompany.com/medrec-client/internal/view"
)

// DashboardPage hosts patient search. Result rows are selectable and
// navigate to the patient detail page on activation.
type DashboardPage struct {
	api     *backend.Client
	store   *session.Store
	doc     *view.Document
	results []backend.Patient
}

func NewDashboardPage(api *backend.Client, store *session.Store) *DashboardPage {
	return &DashboardPage{
		api:   api,
		store: store,
		doc:   view.NewDocument(),
	}
}

func (p *DashboardPage) Doc() *view.Document {
	return p.doc
}

// Load runs the session guard. It must be called before any action on this
// page; a false return means redirect to login with no further work.
func (p *DashboardPage) Load() Route {
	if _, ok := Guard(p.store); !ok {
		return RouteLogin
	}
	return RouteStay
}

// Search dispatches a patient lookup. An empty trimmed query is rejected
// client-side and produces no request.
func (p *DashboardPage) Search(ctx context.Context, query string) Route {
	p.clearResults()
	p.doc.Set(view.TargetMessage, "")

	query = strings.TrimSpace(query)
	if query == "" {
		metrics.RecordValidationRejection("search")
		p.doc.Set(view.TargetMessage, MsgEnterSearchTerm)
		return RouteStay
	}

	o := p.api.SearchPatients(ctx, query)
	if route, handled := resolveFailure(o, p.store, p.doc, MsgNotAllowed, MsgNotFound, MsgSearchFailed); handled {
		return route
	}

	var resp backend.SearchResponse
	if err := json.Unmarshal(o.Body, &resp); err != nil {
		log.Warn().Err(err).Msg("Unexpected search payload shape")
		p.doc.Set(view.TargetMessage, MsgSearchFailed)
		return RouteStay
	}

	if len(resp.Results) == 0 {
		p.doc.Set(view.TargetMessage, MsgNoResults)
		return RouteStay
	}

	p.results = resp.Results
	for i, patient := range p.results {
		p.doc.Set(resultTarget(i), fmt.Sprintf("%s %s", patient.FirstName, patient.LastName))
	}
	return RouteStay
}

// Results returns the current result rows in display order.
func (p *DashboardPage) Results() []backend.Patient {
	return p.results
}

// Open activates a result row (1-based) and navigates to that patient.
func (p *DashboardPage) Open(row int) Route {
	if row < 1 || row > len(p.results) {
		p.doc.Set(view.TargetMessage, MsgInvalidSelection)
		return RouteStay
	}
	return PatientRoute(p.results[row-1].ID)
}

// Logout destroys the session and returns to the entry page.
func (p *DashboardPage) Logout() Route {
	if err := p.store.Clear(); err != nil {
		log.Warn().Err(err).Msg("Failed to clear session on logout")
	}
	metrics.RecordSessionEvent("logout")
	return RouteLogin
}

func (p *DashboardPage) GoToAppointment() Route {
	return RouteAppointment
}

func (p *DashboardPage) clearResults() {
	for i := range p.results {
		p.doc.Remove(resultTarget(i))
	}
	p.results = nil
}

func resultTarget(i int) string {
	return fmt.Sprintf("result%d", i+1)
}
