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

// LoginPage is the entry page. It is the only page without a session guard.
type LoginPage struct {
	api   *backend.Client
	store *session.Store
	doc   *view.Document
}

func NewLoginPage(api *backend.Client, store *session.Store) *LoginPage {
	return &LoginPage{
		api:   api,
		store: store,
		doc:   view.NewDocument(),
	}
}

func (p *LoginPage) Doc() *view.Document {
	return p.doc
}

// Submit authenticates and, on success, creates the session. Credentials are
// trimmed and validated before any request; a stale stored session is
// dropped first so a failed login never leaves the old credential behind.
func (p *LoginPage) Submit(ctx context.Context, username, password string) Route {
	p.doc.Set(view.TargetMessage, "")

	if err := p.store.Clear(); err != nil {
		log.Warn().Err(err).Msg("Failed to drop stale session before login")
	}

	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		metrics.RecordValidationRejection("login")
		p.doc.Set(view.TargetMessage, MsgEnterCredentials)
		return RouteStay
	}

	o := p.api.Login(ctx, username, password)
	switch o.Kind {
	case backend.Success:
		var resp backend.LoginResponse
		if err := json.Unmarshal(o.Body, &resp); err != nil || resp.Token == "" {
			p.doc.Set(view.TargetMessage, MsgLoginFailed)
			return RouteStay
		}
		if err := p.store.Save(session.Session{Token: resp.Token, Role: resp.Role}); err != nil {
			log.Error().Err(err).Msg("Failed to persist session")
			p.doc.Set(view.TargetMessage, MsgLoginFailed)
			return RouteStay
		}
		metrics.RecordSessionEvent("login")
		return RouteDashboard

	case backend.InvalidSession:
		// A 401 here means wrong credentials; there is no session to clear.
		p.doc.Set(view.TargetMessage, MsgInvalidCredentials)
		return RouteStay

	case backend.TransportFailure:
		p.doc.Set(view.TargetMessage, MsgNetworkError)
		return RouteStay

	default:
		if o.Reason != "" {
			p.doc.Set(view.TargetMessage, o.Reason)
		} else {
			p.doc.Set(view.TargetMessage, MsgLoginFailed)
		}
		return RouteStay
	}
}
