// Package crypto holds the account keys used to make ledger calls.
package crypto

import (
	"crypto/subtle"
	"errors"

	"github.com/anyproto/any-trail/ledger"
)

var ErrIncorrectKeyType = errors.New("incorrect key type")

// Key is an abstract interface for all types of keys
type Key interface {
	// Equals returns if the keys are equal
	Equals(Key) bool
	// Raw returns raw key
	Raw() ([]byte, error)
}

// PrivKey signs payloads on behalf of an account
type PrivKey interface {
	Key
	// Sign signs the raw bytes and returns the signature
	Sign([]byte) ([]byte, error)
	// GetPublic returns the associated public key
	GetPublic() PubKey
}

// PubKey verifies signatures and identifies the account on the ledger
type PubKey interface {
	Key
	// Verify verifies the signed message and the signature
	Verify(data []byte, sig []byte) (bool, error)
	// Address returns the ledger address derived from the key
	Address() ledger.Address
}

func KeyEquals(k1, k2 Key) bool {
	a, err := k1.Raw()
	if err != nil {
		return false
	}
	b, err := k2.Raw()
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
