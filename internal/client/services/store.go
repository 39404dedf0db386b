package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ivycraft/navigator/internal/client/models"
	"github.com/ivycraft/navigator/internal/client/repositories/credentials"
	"github.com/ivycraft/navigator/internal/common"
	"github.com/ivycraft/navigator/internal/logging"
)

// CredentialStore keeps the current identity as a JSON record in a single
// repository slot.
type CredentialStore struct {
	repo credentials.Repository
	key  string
	log  logging.Logger
}

func NewCredentialStore(repo credentials.Repository, key string, log logging.Logger) *CredentialStore {
	if key == "" {
		key = common.DefaultCredentialKey
	}
	return &CredentialStore{repo: repo, key: key, log: log.With("component", "credential_store")}
}

// Read returns the stored identity. A missing record, a failing repository
// and a record that does not decode into a valid identity all read as
// absent; the last two are logged and otherwise swallowed.
func (s *CredentialStore) Read(ctx context.Context) (models.Identity, bool) {
	raw, err := s.repo.Get(ctx, s.key)
	if err != nil {
		s.log.Warn(ctx, "credential store read failed", "error", err)
		return models.Identity{}, false
	}
	if raw == nil {
		return models.Identity{}, false
	}

	id, err := decodeIdentity(raw)
	if err != nil {
		s.log.Warn(ctx, "ignoring stored session", "error", err)
		return models.Identity{}, false
	}
	return id, true
}

func decodeIdentity(raw []byte) (models.Identity, error) {
	var id models.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", common.ErrStoreReadCorrupt, err)
	}
	if err := id.Validate(); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", common.ErrStoreReadCorrupt, err)
	}
	return id, nil
}

// Write replaces the stored record with id.
func (s *CredentialStore) Write(ctx context.Context, id models.Identity) error {
	raw, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrStoreWriteFailed, err)
	}
	if err := s.repo.Put(ctx, s.key, raw); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStoreWriteFailed, err)
	}
	return nil
}

// Clear removes the stored record. Clearing an empty store is not an error.
func (s *CredentialStore) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, s.key)
}
