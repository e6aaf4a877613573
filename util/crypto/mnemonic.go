package crypto

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/anyproto/go-slip10"
	"github.com/tyler-smith/go-bip39"
)

var (
	ErrInvalidWordCount = errors.New("error invalid word count for mnemonic")
	ErrInvalidMnemonic  = errors.New("error invalid mnemonic")
)

// https://github.com/satoshilabs/slips/blob/master/slip-0044.md
const ledgerCoinPrefix = "m/44'/4218'"

type Mnemonic string

// NewMnemonic generates a phrase with the given number of words
func NewMnemonic(wordCount int) (Mnemonic, error) {
	var size int
	switch wordCount {
	case 12:
		size = 128
	case 15:
		size = 160
	case 18:
		size = 192
	case 21:
		size = 224
	case 24:
		size = 256
	default:
		return "", ErrInvalidWordCount
	}
	entropy, err := bip39.NewEntropy(size)
	if err != nil {
		return "", err
	}
	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", err
	}
	return Mnemonic(phrase), nil
}

func (m Mnemonic) Seed() ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(string(m), "")
	if err != nil {
		if errors.Is(err, bip39.ErrInvalidMnemonic) {
			return nil, ErrInvalidMnemonic
		}
		return nil, err
	}
	return seed, nil
}

// DeriveKey derives the account key at m/44'/4218'/index'/0'/0'
func (m Mnemonic) DeriveKey(index uint32) (PrivKey, error) {
	seed, err := m.Seed()
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("%s/%d'/0'/0'", ledgerCoinPrefix, index)
	node, err := slip10.DeriveForPath(path, seed)
	if err != nil {
		return nil, err
	}
	return genKey(node)
}

func genKey(node slip10.Node) (key PrivKey, err error) {
	key, _, err = GenerateEd25519Key(bytes.NewReader(node.RawSeed()))
	return
}
