package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ivycraft/navigator/internal/client/models"
	"github.com/ivycraft/navigator/internal/client/repositories/credentials"
	"github.com/ivycraft/navigator/internal/common"
	"github.com/ivycraft/navigator/internal/logging"
)

// ---- recorder ----

type recorder struct {
	mu   sync.Mutex
	list []Notification
}

func (r *recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, n)
}

func (r *recorder) all() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.list...)
}

func (r *recorder) last() Notification {
	all := r.all()
	if len(all) == 0 {
		return Notification{}
	}
	return all[len(all)-1]
}

// ---- fake backend ----

// fakeBackend returns canned results. When gate is set every call blocks
// until it is closed; started is signalled on entry.
type fakeBackend struct {
	identity *models.Identity
	err      error

	gate    chan struct{}
	started chan struct{}

	mu    sync.Mutex
	calls int
}

func (f *fakeBackend) call(ctx context.Context) (*models.Identity, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return nil, f.err
	}
	id := *f.identity
	return &id, nil
}

func (f *fakeBackend) Login(ctx context.Context, _ string, _ []byte) (*models.Identity, error) {
	return f.call(ctx)
}

func (f *fakeBackend) Signup(ctx context.Context, _ string, _ []byte) (*models.Identity, error) {
	return f.call(ctx)
}

func (f *fakeBackend) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// ---- failing repository ----

type failingRepo struct {
	credentials.Repository
	getErr, putErr, deleteErr error
}

func (r *failingRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.Repository.Get(ctx, key)
}

func (r *failingRepo) Put(ctx context.Context, key string, value []byte) error {
	if r.putErr != nil {
		return r.putErr
	}
	return r.Repository.Put(ctx, key, value)
}

func (r *failingRepo) Delete(ctx context.Context, key string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	return r.Repository.Delete(ctx, key)
}

var errDisk = errors.New("disk full")

func newStore(t *testing.T, repo credentials.Repository) *CredentialStore {
	t.Helper()
	if repo == nil {
		repo = credentials.NewMemoryRepository()
	}
	return NewCredentialStore(repo, common.DefaultCredentialKey, logging.Nop())
}

func putRaw(t *testing.T, repo credentials.Repository, raw string) {
	t.Helper()
	if err := repo.Put(context.Background(), common.DefaultCredentialKey, []byte(raw)); err != nil {
		t.Fatalf("seed repo: %v", err)
	}
}

// ---- entitlement ----

type fakeEntitlement struct{ premium bool }

func (f *fakeEntitlement) IsPremium() bool { return f.premium }
