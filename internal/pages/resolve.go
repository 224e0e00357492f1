package pages

import (
	"github.com/rs/zerolog/log"

	"stealthcompany.com/medrec-client/internal/backend"
	"stealthcompany.com/medrec-client/internal/metrics"
	"stealthcompany.com/medrec-client/internal/session"
	"stealthcompany.com/medrec-client/internal/view"
)

// resolveFailure applies the shared failure policy for protected endpoints.
// It returns handled=false only for Success; otherwise the page-appropriate
// message has been written (or, for an invalid session, the stored state
// cleared) and the returned route is final. Keeping this in one place
// guarantees every page treats a 401 identically.
func resolveFailure(o backend.Outcome, store *session.Store, doc *view.Document, forbiddenMsg, notFoundMsg, fallbackMsg string) (Route, bool) {
	switch o.Kind {
	case backend.Success:
		return RouteStay, false

	case backend.InvalidSession:
		if err := store.Clear(); err != nil {
			log.Warn().Err(err).Msg("Failed to clear invalidated session")
		}
		metrics.RecordSessionEvent("invalidated")
		return RouteLogin, true

	case backend.Forbidden:
		// Informational only; the session stays intact.
		doc.Set(view.TargetMessage, forbiddenMsg)
		return RouteStay, true

	case backend.NotFound:
		doc.Set(view.TargetMessage, notFoundMsg)
		return RouteStay, true

	case backend.Rejected:
		if o.Reason != "" {
			doc.Set(view.TargetMessage, o.Reason)
		} else {
			doc.Set(view.TargetMessage, fallbackMsg)
		}
		return RouteStay, true

	default:
		doc.Set(view.TargetMessage, MsgNetworkError)
		return RouteStay, true
	}
}
