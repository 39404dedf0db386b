// Package models defines the client-side records: the signed-in identity and
// the application tracker entries.
package models

import (
	"fmt"

	"github.com/ivycraft/navigator/internal/common"
)

// Tier is the subscription level that decides which content branch renders.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	return t == TierFree || t == TierPremium
}

// Identity is the signed-in user. It is stored verbatim in the credential
// store; the JSON field names match the record written by earlier clients.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Tier  Tier   `json:"subscription"`
}

// Validate checks that a decoded record is usable as a session.
func (i Identity) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("%w: identity id is empty", common.ErrorValidation)
	}
	if i.Email == "" {
		return fmt.Errorf("%w: identity email is empty", common.ErrorValidation)
	}
	if !i.Tier.Valid() {
		return fmt.Errorf("%w: unknown tier %q", common.ErrorValidation, i.Tier)
	}
	return nil
}

// IsPremium reports whether the identity carries the premium tier.
func (i Identity) IsPremium() bool {
	return i.Tier == TierPremium
}
