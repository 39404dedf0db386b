package services

// IsPremium is the entitlement gate: premium content renders only for an
// authenticated session whose identity carries the premium tier.
//
// No operation in this client writes the premium tier, so for every session
// created here the gate is false. Only a record already stored with
// "subscription": "premium" opens it.
func IsPremium(s Snapshot) bool {
	return s.State == StateAuthenticated && s.Identity != nil && s.Identity.IsPremium()
}
