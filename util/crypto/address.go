package crypto

import (
	"golang.org/x/crypto/blake2b"

	"github.com/anyproto/any-trail/ledger"
)

// SchemeFlag prefixes the public key before hashing it into an address
type SchemeFlag byte

const (
	SchemeEd25519 SchemeFlag = 0x00
)

// DeriveAddress returns blake2b-256(flag || pubKey)
func DeriveAddress(flag SchemeFlag, pubKey []byte) ledger.Address {
	buf := make([]byte, 0, len(pubKey)+1)
	buf = append(buf, byte(flag))
	buf = append(buf, pubKey...)
	return ledger.Address(blake2b.Sum256(buf))
}
