package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const storeFileName = "sessions.json"

// Store persists sessions in a JSON file under the client data directory,
// keyed by backend origin. Sessions survive process restarts within the same
// origin and are removed on logout or invalid-session detection, mirroring
// an origin-scoped key-value store.
type Store struct {
	path   string
	origin string
}

// NewStore creates a store scoped to the given backend origin.
func NewStore(dataDir, origin string) *Store {
	return &Store{
		path:   filepath.Join(dataDir, storeFileName),
		origin: origin,
	}
}

// Load returns the stored session for this origin, or nil when absent.
// The file is re-read on every call so that concurrent client processes
// observe logout immediately.
func (s *Store) Load() (*Session, error) {
	all, err := s.readAll()
	if err != nil {
		return nil, err
	}

	sess, ok := all[s.origin]
	if !ok || sess.Token == "" {
		return nil, nil
	}
	return &sess, nil
}

// Save writes the session for this origin, replacing any previous one.
func (s *Store) Save(sess Session) error {
	all, err := s.readAll()
	if err != nil {
		return err
	}

	all[s.origin] = sess
	return s.writeAll(all)
}

// Clear removes all session state for this origin.
func (s *Store) Clear() error {
	all, err := s.readAll()
	if err != nil {
		return err
	}

	if _, ok := all[s.origin]; !ok {
		return nil
	}

	delete(all, s.origin)
	return s.writeAll(all)
}

// Check is the session guard: it reports whether a usable credential exists
// for this origin. A credential that is locally detectable as expired is
// treated exactly like a backend 401 and cleared. Protected pages must call
// Check before any other work and stop when it reports false.
func (s *Store) Check() (*Session, bool) {
	sess, err := s.Load()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read session store")
		return nil, false
	}
	if sess == nil {
		return nil, false
	}

	if tokenExpired(sess.Token) {
		log.Info().Msg("Stored credential expired, clearing session")
		if err := s.Clear(); err != nil {
			log.Warn().Err(err).Msg("Failed to clear expired session")
		}
		return nil, false
	}

	return sess, true
}

func (s *Store) readAll() (map[string]Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]Session{}, nil
		}
		return nil, fmt.Errorf("read session store: %w", err)
	}

	all := map[string]Session{}
	if err := json.Unmarshal(data, &all); err != nil {
		// A corrupt store is unusable; start over rather than lock the
		// user out of login.
		log.Warn().Err(err).Str("path", s.path).Msg("Session store corrupt, resetting")
		return map[string]Session{}, nil
	}
	return all, nil
}

func (s *Store) writeAll(all map[string]Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session store: %w", err)
	}

	// Credentials on disk are readable by the owning user only.
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session store: %w", err)
	}
	return nil
}
