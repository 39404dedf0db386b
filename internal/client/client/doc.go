// Package client contains the authentication backend used by the IvyCraft
// session manager.
//
// # Overview
//
//  1. Backend is the transport-agnostic contract: Login and Signup, each
//     returning the identity to persist.
//  2. MemoryBackend is the only implementation. It accepts the demo account
//     (demo@example.com / password) plus any accounts added with
//     WithAccount, checks passwords against argon2-derived verifiers, and
//     signs up any non-empty email with a fresh "user-<uuid>" id.
//
// # Error Handling
//
// Callers match ErrInvalidCredentials and ErrEmptyEmail with errors.Is.
//
// # Latency
//
// Both calls sleep for the configured delay before answering. The delay is
// not interrupted by context cancellation.
package client
