package accounttest

import (
	"github.com/anyproto/any-trail/accountservice"
	"github.com/anyproto/any-trail/app"
	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/util/crypto"
)

// AccountTestService provides service for test purposes, generates a random account on first Init
type AccountTestService struct {
	key crypto.PrivKey
}

func (s *AccountTestService) Init(a *app.App) (err error) {
	if s.key != nil {
		return
	}
	s.key, _, err = crypto.GenerateRandomEd25519KeyPair()
	return
}

func (s *AccountTestService) Name() (name string) {
	return accountservice.CName
}

func (s *AccountTestService) Account() crypto.PrivKey {
	return s.key
}

func (s *AccountTestService) PublicKey() []byte {
	raw, _ := s.key.GetPublic().Raw()
	return raw
}

func (s *AccountTestService) Address() ledger.Address {
	return s.key.GetPublic().Address()
}

var _ accountservice.Service = (*AccountTestService)(nil)
