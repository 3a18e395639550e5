// Package credential seals credential secrets before they reach the account
// store and matches presented secrets against the sealed value.
package credential

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrSecretTooLong is returned by Bcrypt.Seal for secrets over 72 bytes.
var ErrSecretTooLong = bcrypt.ErrPasswordTooLong

// Policy seals and matches secrets. The account store treats sealed values as opaque.
type Policy interface {
	Seal(secret string) (string, error)
	Match(sealed, secret string) bool
}

// New returns the policy registered under name.
func New(name string) (Policy, error) {
	switch name {
	case "bcrypt":
		return Bcrypt{Cost: bcrypt.DefaultCost}, nil
	case "plain":
		return Plain{}, nil
	default:
		return nil, fmt.Errorf("unknown credential policy %q", name)
	}
}

// Bcrypt stores a bcrypt hash of the secret.
type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Seal(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), b.Cost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hash), nil
}

func (Bcrypt) Match(sealed, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(sealed), []byte(secret)) == nil
}

// Plain stores the secret verbatim and compares it exactly.
type Plain struct{}

func (Plain) Seal(secret string) (string, error) { return secret, nil }

func (Plain) Match(sealed, secret string) bool {
	return subtle.ConstantTimeCompare([]byte(sealed), []byte(secret)) == 1
}
