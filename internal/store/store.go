// Package store is the persistent storage service: five logical tables, each
// serialized as a single value in the injected backend, with synchronous
// change notification after every mutation. There are no transactions; a
// mutex serializes read-modify-write cycles within this process and the last
// completed write wins.
package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"autoluxe/pkg/localdb"
	"autoluxe/pkg/logger"
)

const (
	vehiclesKey     = "autoluxe_vehicles_db_v1"
	adminCredsKey   = "autoluxe_admin_creds_v1"
	adminSessionKey = "autoluxe_admin_session_v1"
	usersKey        = "autoluxe_users_db_v1"
	currentUserKey  = "autoluxe_current_user_session_v1"
	requestsKey     = "autoluxe_exchange_requests_v1"
)

type Store struct {
	backend localdb.Backend
	events  *Notifier
	logger  *logger.Logger
	mutex   sync.Mutex
}

func New(backend localdb.Backend, log *logger.Logger) *Store {
	return &Store{
		backend: backend,
		events:  NewNotifier(),
		logger:  log,
	}
}

// Events exposes the observer interface; callers subscribe per channel and
// re-fetch the affected table when notified.
func (s *Store) Events() *Notifier {
	return s.events
}

func (s *Store) writeJSON(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := s.backend.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

// readJSON loads a table. Missing keys and unparseable values both degrade to
// the zero value; corruption is logged, never surfaced.
func (s *Store) readJSON(key string, out interface{}) bool {
	raw, ok, err := s.backend.Get(key)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("storage read failed")
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("stored data corrupt, falling back")
		return false
	}
	return true
}
