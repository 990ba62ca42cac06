package model

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/motodeal/motodeal-server/internal/credential"
)

// Provider identifies how a user authenticates.
type Provider string

const (
	// ProviderLocal is the default password-based provider.
	ProviderLocal Provider = "local"
	// ProviderGitHub is a federated OAuth provider.
	ProviderGitHub Provider = "github"
	// ProviderTwitter is a federated OAuth provider.
	ProviderTwitter Provider = "twitter"
	// ProviderFacebook is a federated OAuth provider.
	ProviderFacebook Provider = "facebook"
	// ProviderGoogle is a federated OAuth provider.
	ProviderGoogle Provider = "google"
)

// Federated reports whether the provider authenticates users externally.
// An unset provider counts as local.
func (p Provider) Federated() bool {
	switch p {
	case ProviderGitHub, ProviderTwitter, ProviderFacebook, ProviderGoogle:
		return true
	}
	return false
}

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsWithEmail(ctx context.Context, email string) (bool, error)
}

// User represents a stored user with authentication material.
//
// Salt and DerivedKey are always set together through SetSecret; the plaintext
// secret lives only in the unexported transient field and is never persisted
// or serialized.
type User struct {
	ID         uuid.UUID
	Name       string
	Email      string
	DerivedKey string
	Salt       string
	Provider   Provider
	Role       string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// plaintext secret supplied during the current SetSecret call only.
	secret string
}

// NormalizeEmail lower-cases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SetSecret regenerates the salt and derives a fresh key from plaintext.
// Both fields change atomically; there is no way to set one without the other.
// The plaintext is retained in memory for the duration of the operation and
// can be read back with Secret.
func (u *User) SetSecret(plaintext string) error {
	salt, err := credential.GenerateSalt()
	if err != nil {
		return err
	}
	u.secret = plaintext
	u.Salt = salt
	u.DerivedKey = credential.DeriveKey(plaintext, salt)
	return nil
}

// Secret returns the transient plaintext from the current SetSecret call.
func (u *User) Secret() string {
	return u.secret
}

// Authenticate reports whether the candidate plaintext matches the stored
// credential. A user without a credential never authenticates.
func (u *User) Authenticate(candidate string) bool {
	return credential.Verify(candidate, u.Salt, u.DerivedKey)
}

// TokenView is the minimal projection embedded in signed tokens. Field names
// are fixed for compatibility with existing clients.
type TokenView struct {
	ID   uuid.UUID `json:"_id"`
	Role string    `json:"role"`
}

// PublicProfile is the projection safe to return in public listings.
type PublicProfile struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Token returns the identity projection for authorization artifacts.
// It never includes email, salt, or key material.
func (u *User) Token() TokenView {
	return TokenView{ID: u.ID, Role: u.Role}
}

// Public returns the profile projection for public listings.
func (u *User) Public() PublicProfile {
	return PublicProfile{Name: u.Name, Role: u.Role}
}
