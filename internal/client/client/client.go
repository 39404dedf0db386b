package client

import (
	"context"

	"github.com/ivycraft/navigator/internal/client/models"
)

// Backend authenticates users and mints identities. The session manager
// only talks to this contract, so a networked implementation can replace
// MemoryBackend without touching it.
type Backend interface {
	Login(ctx context.Context, email string, password []byte) (*models.Identity, error)
	Signup(ctx context.Context, email string, password []byte) (*models.Identity, error)
}
