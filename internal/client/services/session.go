// Package services contains the client application services: the session
// manager and its credential store, the entitlement gate, the premium
// upgrade flow and the application tracker.
package services

import (
	"context"
	"sync"

	"github.com/ivycraft/navigator/internal/client/client"
	"github.com/ivycraft/navigator/internal/client/models"
	"github.com/ivycraft/navigator/internal/common"
	"github.com/ivycraft/navigator/internal/logging"
	"golang.org/x/sync/semaphore"
)

// State is the authentication state of the session.
type State int

const (
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is the read-only view handed to feature code.
type Snapshot struct {
	State    State
	Identity *models.Identity
	Busy     bool
	Premium  bool
}

type messages struct {
	op           string
	successTitle string
	successText  string
	failureTitle string
}

var (
	loginMessages = messages{
		op:           "login",
		successTitle: "Login successful",
		successText:  "Welcome back to IvyCraft!",
		failureTitle: "Login failed",
	}
	signupMessages = messages{
		op:           "signup",
		successTitle: "Account created",
		successText:  "Welcome to IvyCraft!",
		failureTitle: "Signup failed",
	}
)

// SessionManager owns who is signed in. It is the only writer of the
// credential store; every transition is published to Watch subscribers and
// every user-visible outcome is reported to the Notifier.
type SessionManager struct {
	backend  client.Backend
	store    *CredentialStore
	notifier Notifier
	log      logging.Logger

	// inflight admits one login or signup at a time.
	inflight *semaphore.Weighted

	// writeMu orders store writes with the state commits that follow them.
	writeMu sync.Mutex
	// epoch is bumped by every logout; a login that started in an older
	// epoch is discarded.
	epoch uint64

	mu       sync.RWMutex
	state    State
	identity *models.Identity
	busy     bool

	changes broadcaster[Snapshot]
}

func NewSessionManager(backend client.Backend, store *CredentialStore, notifier Notifier, log logging.Logger) *SessionManager {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &SessionManager{
		backend:  backend,
		store:    store,
		notifier: notifier,
		log:      log.With("component", "session"),
		inflight: semaphore.NewWeighted(1),
	}
}

// Restore loads the session from the credential store. A stored record is
// trusted as is; anything unreadable leaves the session anonymous.
func (m *SessionManager) Restore(ctx context.Context) {
	m.writeMu.Lock()
	id, ok := m.store.Read(ctx)
	var s Snapshot
	if ok {
		s = m.commit(StateAuthenticated, &id)
	} else {
		s = m.commit(StateAnonymous, nil)
	}
	m.writeMu.Unlock()

	if ok {
		m.log.Info(ctx, "session restored", "user_id", id.ID, "tier", id.Tier)
	} else {
		m.log.Info(ctx, "no stored session")
	}
	m.changes.publish(s)
}

// Login authenticates against the backend and, on success, persists and
// activates the returned identity. Failures are reported to the notifier
// and returned; the session is left as it was.
func (m *SessionManager) Login(ctx context.Context, email string, password []byte) error {
	return m.authenticate(ctx, email, password, m.backend.Login, loginMessages)
}

// Signup creates a new identity through the backend and activates it the
// same way Login does.
func (m *SessionManager) Signup(ctx context.Context, email string, password []byte) error {
	return m.authenticate(ctx, email, password, m.backend.Signup, signupMessages)
}

type authFunc func(ctx context.Context, email string, password []byte) (*models.Identity, error)

func (m *SessionManager) authenticate(ctx context.Context, email string, password []byte, call authFunc, msg messages) error {
	if !m.inflight.TryAcquire(1) {
		m.log.Warn(ctx, msg.op+" rejected, another request is in flight", "email", email)
		return common.ErrBusy
	}
	defer m.inflight.Release(1)

	m.setBusy(true)
	defer m.setBusy(false)

	m.writeMu.Lock()
	epoch := m.epoch
	m.writeMu.Unlock()

	id, err := call(ctx, email, password)

	// The caller may have gone away during the backend call; the
	// transition still completes.
	ctx = context.WithoutCancel(ctx)

	if err != nil {
		m.log.Info(ctx, msg.op+" failed", "email", email, "error", err)
		m.notifier.Notify(Notification{Kind: NotifyError, Title: msg.failureTitle, Detail: err.Error()})
		return err
	}

	m.writeMu.Lock()
	if m.epoch != epoch {
		m.writeMu.Unlock()
		m.log.Info(ctx, msg.op+" discarded, logged out meanwhile", "email", email)
		return common.ErrSuperseded
	}
	if err := m.store.Write(ctx, *id); err != nil {
		m.writeMu.Unlock()
		m.log.Error(ctx, msg.op+" could not persist session", "email", email, "error", err)
		m.notifier.Notify(Notification{Kind: NotifyError, Title: msg.failureTitle, Detail: err.Error()})
		return err
	}
	s := m.commit(StateAuthenticated, id)
	m.writeMu.Unlock()

	m.changes.publish(s)
	m.log.Info(ctx, msg.op+" succeeded", "user_id", id.ID)
	m.notifier.Notify(Notification{Kind: NotifySuccess, Title: msg.successTitle, Detail: msg.successText})
	return nil
}

// Logout clears the stored record and drops the identity. It never fails:
// a store error is logged and the in-memory session is still cleared. A
// login or signup still waiting for the backend is discarded.
func (m *SessionManager) Logout(ctx context.Context) {
	m.writeMu.Lock()
	m.epoch++
	if err := m.store.Clear(ctx); err != nil {
		m.log.Error(ctx, "logout could not clear credential store", "error", err)
	}
	s := m.commit(StateAnonymous, nil)
	m.writeMu.Unlock()

	m.changes.publish(s)
	m.log.Info(ctx, "logged out")
	m.notifier.Notify(Notification{
		Kind:   NotifySuccess,
		Title:  "Logged out",
		Detail: "You have been successfully logged out.",
	})
}

// Snapshot returns the current state. The identity is a copy.
func (m *SessionManager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

func (m *SessionManager) snapshotLocked() Snapshot {
	s := Snapshot{State: m.state, Busy: m.busy}
	if m.identity != nil {
		id := *m.identity
		s.Identity = &id
	}
	s.Premium = IsPremium(s)
	return s
}

func (m *SessionManager) State() State {
	return m.Snapshot().State
}

// Identity returns the signed-in identity, if any.
func (m *SessionManager) Identity() (models.Identity, bool) {
	s := m.Snapshot()
	if s.Identity == nil {
		return models.Identity{}, false
	}
	return *s.Identity, true
}

func (m *SessionManager) IsBusy() bool {
	return m.Snapshot().Busy
}

func (m *SessionManager) IsPremium() bool {
	return m.Snapshot().Premium
}

// Watch calls fn with a fresh snapshot after every state or busy change.
func (m *SessionManager) Watch(fn func(Snapshot)) (cancel func()) {
	return m.changes.subscribe(fn)
}

// commit swaps the state and returns the snapshot to publish. Callers
// publish after releasing writeMu so subscribers may call back in.
func (m *SessionManager) commit(state State, id *models.Identity) Snapshot {
	m.mu.Lock()
	m.state = state
	if id != nil {
		cp := *id
		m.identity = &cp
	} else {
		m.identity = nil
	}
	s := m.snapshotLocked()
	m.mu.Unlock()
	return s
}

func (m *SessionManager) setBusy(busy bool) {
	m.mu.Lock()
	m.busy = busy
	s := m.snapshotLocked()
	m.mu.Unlock()

	m.changes.publish(s)
}
