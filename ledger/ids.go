package ledger

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

const (
	AddressLength = 32
	DigestLength  = 32
)

var (
	ErrIncorrectAddress = errors.New("incorrect address")
	ErrIncorrectDigest  = errors.New("incorrect digest")
)

// Address identifies an account on the ledger.
type Address [AddressLength]byte

// ObjectID identifies a ledger object. It shares the address space.
type ObjectID [AddressLength]byte

// Digest is the content digest carried by an object reference.
type Digest [DigestLength]byte

func parseHex32(s string) (res [AddressLength]byte, err error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" || len(s) > AddressLength*2 {
		return res, fmt.Errorf("%w: %q", ErrIncorrectAddress, s)
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrIncorrectAddress, err)
	}
	copy(res[AddressLength-len(b):], b)
	return
}

// ParseAddress accepts full and short hex forms, with or without the 0x prefix.
func ParseAddress(s string) (Address, error) {
	b, err := parseHex32(s)
	return Address(b), err
}

func MustAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) ObjectID() ObjectID {
	return ObjectID(a)
}

func ParseObjectID(s string) (ObjectID, error) {
	b, err := parseHex32(s)
	return ObjectID(b), err
}

func MustObjectID(s string) ObjectID {
	id, err := ParseObjectID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ObjectID) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

func (id ObjectID) IsZero() bool {
	return id == ObjectID{}
}

func (id ObjectID) Address() Address {
	return Address(id)
}

func ParseDigest(s string) (d Digest, err error) {
	b, err := base58.Decode(s)
	if err != nil {
		return d, fmt.Errorf("%w: %w", ErrIncorrectDigest, err)
	}
	if len(b) != DigestLength {
		return d, fmt.Errorf("%w: expected %d bytes, got %d", ErrIncorrectDigest, DigestLength, len(b))
	}
	copy(d[:], b)
	return
}

func (d Digest) String() string {
	return base58.Encode(d[:])
}
