package pages

import (
	"github.com/rs/zerolog/log"

	"stealthcompany.com/medrec-client/internal/session"
)

// Guard is the session check every protected page runs before any other
// work. When it reports false the page must perform no network calls and no
// rendering; the caller navigates to the login page instead.
func Guard(store *session.Store) (*session.Session, bool) {
	sess, ok := store.Check()
	if !ok {
		log.Debug().Msg("No stored session, redirecting to login")
		return nil, false
	}
	return sess, true
}
