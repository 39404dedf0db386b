package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ivycraft/navigator/internal/client/models"
	"github.com/ivycraft/navigator/internal/client/repositories/credentials"
	"github.com/ivycraft/navigator/internal/common"
	"github.com/ivycraft/navigator/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialStore_Read_Absent(t *testing.T) {
	s := newStore(t, nil)
	_, ok := s.Read(context.Background())
	require.False(t, ok)
}

func TestCredentialStore_WriteRead_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, nil)
	id := models.Identity{ID: "user-123", Email: "demo@example.com", Tier: models.TierFree}

	require.NoError(t, s.Write(ctx, id))
	got, ok := s.Read(ctx)
	require.True(t, ok)
	require.Equal(t, id, got)
}

func TestCredentialStore_Write_StoredFormat(t *testing.T) {
	ctx := context.Background()
	repo := credentials.NewMemoryRepository()
	s := newStore(t, repo)

	require.NoError(t, s.Write(ctx, models.Identity{ID: "user-123", Email: "demo@example.com", Tier: models.TierFree}))

	raw, err := repo.Get(ctx, common.DefaultCredentialKey)
	require.NoError(t, err)

	var m map[string]string
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, map[string]string{"id": "user-123", "email": "demo@example.com", "subscription": "free"}, m)
}

func TestCredentialStore_Read_CorruptIsAbsent(t *testing.T) {
	cases := map[string]string{
		"not json":      "{not json",
		"wrong shape":   `[1,2,3]`,
		"missing id":    `{"email":"a@b.c","subscription":"free"}`,
		"missing email": `{"id":"user-1","subscription":"free"}`,
		"unknown tier":  `{"id":"user-1","email":"a@b.c","subscription":"gold"}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			repo := credentials.NewMemoryRepository()
			putRaw(t, repo, raw)
			_, ok := newStore(t, repo).Read(context.Background())
			require.False(t, ok)
		})
	}
}

func TestCredentialStore_Read_PremiumTrustedVerbatim(t *testing.T) {
	repo := credentials.NewMemoryRepository()
	putRaw(t, repo, `{"id":"user-9","email":"p@x.io","subscription":"premium"}`)

	got, ok := newStore(t, repo).Read(context.Background())
	require.True(t, ok)
	require.True(t, got.IsPremium())
}

func TestCredentialStore_Read_RepoErrorIsAbsent(t *testing.T) {
	repo := &failingRepo{Repository: credentials.NewMemoryRepository(), getErr: errDisk}
	_, ok := newStore(t, repo).Read(context.Background())
	require.False(t, ok)
}

func TestCredentialStore_Write_Error(t *testing.T) {
	repo := &failingRepo{Repository: credentials.NewMemoryRepository(), putErr: errDisk}
	err := newStore(t, repo).Write(context.Background(), models.Identity{ID: "u", Email: "e", Tier: models.TierFree})
	require.ErrorIs(t, err, common.ErrStoreWriteFailed)
	require.ErrorIs(t, err, errDisk)
}

func TestCredentialStore_Clear(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, nil)
	require.NoError(t, s.Write(ctx, models.Identity{ID: "u", Email: "e", Tier: models.TierFree}))

	require.NoError(t, s.Clear(ctx))
	_, ok := s.Read(ctx)
	require.False(t, ok)

	// clearing an empty slot is fine
	require.NoError(t, s.Clear(ctx))
}

func TestCredentialStore_DefaultKey(t *testing.T) {
	ctx := context.Background()
	repo := credentials.NewMemoryRepository()
	s := NewCredentialStore(repo, "", logging.Nop())
	require.NoError(t, s.Write(ctx, models.Identity{ID: "u", Email: "e", Tier: models.TierFree}))

	raw, err := repo.Get(ctx, common.DefaultCredentialKey)
	require.NoError(t, err)
	require.NotNil(t, raw)
}

func TestDecodeIdentity_WrapsCorrupt(t *testing.T) {
	_, err := decodeIdentity([]byte("nope"))
	require.ErrorIs(t, err, common.ErrStoreReadCorrupt)

	_, err = decodeIdentity([]byte(`{"id":"","email":"x","subscription":"free"}`))
	require.ErrorIs(t, err, common.ErrStoreReadCorrupt)
	require.ErrorIs(t, err, common.ErrorValidation)
}
