package client

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ivycraft/navigator/internal/client/models"
	"github.com/ivycraft/navigator/internal/common"
	"github.com/ivycraft/navigator/internal/cryptox"
)

// Demo account accepted by every MemoryBackend.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "password"
	DemoUserID   = "user-123"
)

type account struct {
	id       string
	salt     []byte
	verifier []byte
}

// MemoryBackend is the offline stand-in for an auth server: a fixed
// allow-list for login and unconditional signup, each after a simulated delay.
type MemoryBackend struct {
	mu       sync.RWMutex
	accounts map[string]account
	delay    time.Duration
	sleep    func(time.Duration)
	newID    func() string
}

type Option func(*MemoryBackend)

// WithDelay sets the simulated network latency.
func WithDelay(d time.Duration) Option {
	return func(b *MemoryBackend) { b.delay = d }
}

// WithAccount adds an allow-listed login.
func WithAccount(email, id string, password []byte) Option {
	return func(b *MemoryBackend) { b.addAccount(email, id, password) }
}

// NewMemoryBackend returns a backend seeded with the demo account.
func NewMemoryBackend(opts ...Option) *MemoryBackend {
	b := &MemoryBackend{
		accounts: make(map[string]account),
		sleep:    time.Sleep,
		newID:    func() string { return "user-" + uuid.NewString() },
	}
	b.addAccount(DemoEmail, DemoUserID, []byte(DemoPassword))
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *MemoryBackend) addAccount(email, id string, password []byte) {
	salt := common.GenerateRandByteArray(cryptox.SaltSize)
	verifier := cryptox.MakeVerifier(cryptox.DeriveKey(password, salt))

	b.mu.Lock()
	defer b.mu.Unlock()
	b.accounts[email] = account{id: id, salt: salt, verifier: verifier}
}

// wait blocks for the configured delay. Cancellation of the caller's context
// does not shorten it; the request is considered already on the wire.
func (b *MemoryBackend) wait() {
	if b.delay > 0 {
		b.sleep(b.delay)
	}
}

// Login accepts only allow-listed email/password pairs and returns a
// free-tier identity for them.
func (b *MemoryBackend) Login(_ context.Context, email string, password []byte) (*models.Identity, error) {
	b.wait()

	b.mu.RLock()
	acc, ok := b.accounts[email]
	b.mu.RUnlock()
	if !ok || !cryptox.CheckPassword(password, acc.salt, acc.verifier) {
		return nil, ErrInvalidCredentials
	}

	return &models.Identity{ID: acc.id, Email: email, Tier: models.TierFree}, nil
}

// Signup always succeeds for a non-empty email. No account is recorded, so
// the new identity cannot log in again after logout.
func (b *MemoryBackend) Signup(_ context.Context, email string, _ []byte) (*models.Identity, error) {
	b.wait()

	if email == "" {
		return nil, ErrEmptyEmail
	}
	return &models.Identity{ID: b.newID(), Email: email, Tier: models.TierFree}, nil
}
