package session

import (
	"encoding/json"
	"sync"

	"careloop/models"

	"go.uber.org/zap"
)

// Kind identifies which identity is active. At most one kind is active per
// client run; simultaneous user + caregiver sessions are unsupported.
type Kind string

const (
	KindNone      Kind = ""
	KindUser      Kind = "user"
	KindCaregiver Kind = "caregiver"
)

// Manager owns the in-memory identity and mirrors it into the Store.
type Manager struct {
	mu        sync.RWMutex
	store     Store
	user      *models.User
	caregiver *models.Caregiver
	careType  string
	log       *zap.Logger
}

func NewManager(store Store, logger *zap.Logger) *Manager {
	return &Manager{store: store, log: logger}
}

// Kind reports which identity kind is currently active.
func (m *Manager) Kind() Kind {
	m.mu.RLock()
	defer m.mu.RUnlock()
	switch {
	case m.user != nil:
		return KindUser
	case m.caregiver != nil:
		return KindCaregiver
	default:
		return KindNone
	}
}

// CurrentUser returns the active user identity, or nil.
func (m *Manager) CurrentUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// CurrentCaregiver returns the active caregiver identity, or nil.
func (m *Manager) CurrentCaregiver() *models.Caregiver {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.caregiver
}

// SaveUser stores a user identity in memory and in persistent storage,
// displacing any caregiver identity.
func (m *Manager) SaveUser(u *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = u
	m.caregiver = nil
	m.persist(KeyCurrentUser, u)
	if err := m.store.Delete(KeyCurrentCaregiver); err != nil {
		m.log.Warn("session: failed to clear caregiver key", zap.Error(err))
	}
}

// SaveCaregiver stores a caregiver identity, displacing any user identity.
func (m *Manager) SaveCaregiver(c *models.Caregiver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.caregiver = c
	m.user = nil
	m.persist(KeyCurrentCaregiver, c)
	if err := m.store.Delete(KeyCurrentUser); err != nil {
		m.log.Warn("session: failed to clear user key", zap.Error(err))
	}
}

// SetCareType persists the user's selected care type for the browse filter.
func (m *Manager) SetCareType(careType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.careType = careType
	m.persist(KeySelectedCareType, careType)
}

// CareType returns the selected care type, empty when none chosen.
func (m *Manager) CareType() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.careType
}

// Clear removes both identity keys from storage and drops the in-memory
// identity, regardless of which kind was active.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	m.caregiver = nil
	m.careType = ""
	for _, key := range []string{KeyCurrentUser, KeyCurrentCaregiver, KeySelectedCareType} {
		if err := m.store.Delete(key); err != nil {
			m.log.Warn("session: failed to clear key", zap.String("key", key), zap.Error(err))
		}
	}
}

// Restore runs once at startup: it reads persisted storage, reconstructs the
// in-memory identity, and reports the active kind so the caller can route to
// the appropriate landing page. A user session takes precedence if both keys
// somehow exist.
func (m *Manager) Restore() Kind {
	m.mu.Lock()
	defer m.mu.Unlock()

	if data, ok, err := m.store.Get(KeySelectedCareType); err == nil && ok {
		var careType string
		if json.Unmarshal(data, &careType) == nil {
			m.careType = careType
		}
	}

	if data, ok, err := m.store.Get(KeyCurrentUser); err == nil && ok {
		var u models.User
		if err := json.Unmarshal(data, &u); err == nil {
			m.user = &u
			return KindUser
		}
		m.log.Warn("session: corrupt user session discarded", zap.Error(err))
	}

	if data, ok, err := m.store.Get(KeyCurrentCaregiver); err == nil && ok {
		var c models.Caregiver
		if err := json.Unmarshal(data, &c); err == nil {
			m.caregiver = &c
			return KindCaregiver
		}
		m.log.Warn("session: corrupt caregiver session discarded", zap.Error(err))
	}

	return KindNone
}

// persist serializes v under key. Storage failures are logged, not fatal:
// the in-memory session stays usable for the rest of the run.
func (m *Manager) persist(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		m.log.Warn("session: marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := m.store.Put(key, data); err != nil {
		m.log.Warn("session: persist failed", zap.String("key", key), zap.Error(err))
	}
}
