package accountservice

import (
	"encoding/base64"
	"fmt"

	"github.com/anyproto/any-trail/app"
	"github.com/anyproto/any-trail/app/logger"
	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/ledgererr"
	"github.com/anyproto/any-trail/util/crypto"
	"go.uber.org/zap"
)

const CName = "common.accountservice"

var log = logger.NewNamed(CName)

// Service is the signer calls are made from
type Service interface {
	app.Component
	ledger.Signer
	Account() crypto.PrivKey
}

type Config struct {
	// SigningKey is a base64 encoded ed25519 seed or private key, it wins over Mnemonic
	SigningKey string `yaml:"signingKey"`
	Mnemonic   string `yaml:"mnemonic"`
	Index      uint32 `yaml:"index"`
}

type ConfigGetter interface {
	GetAccount() Config
}

func New() Service {
	return new(service)
}

// NewWithKey returns a service bound to the key, config is not consulted
func NewWithKey(key crypto.PrivKey) Service {
	return &service{key: key}
}

type service struct {
	key crypto.PrivKey
}

func (s *service) Init(a *app.App) (err error) {
	if s.key != nil {
		return nil
	}
	conf := a.MustComponent("config").(ConfigGetter).GetAccount()
	if s.key, err = KeyFromConfig(conf); err != nil {
		return err
	}
	log.Info("account loaded", zap.String("address", s.Address().String()))
	return nil
}

func (s *service) Name() (name string) {
	return CName
}

func (s *service) Account() crypto.PrivKey {
	return s.key
}

func (s *service) PublicKey() []byte {
	raw, _ := s.key.GetPublic().Raw()
	return raw
}

func (s *service) Address() ledger.Address {
	return s.key.GetPublic().Address()
}

func KeyFromConfig(conf Config) (crypto.PrivKey, error) {
	switch {
	case conf.SigningKey != "":
		raw, err := base64.StdEncoding.DecodeString(conf.SigningKey)
		if err != nil {
			return nil, fmt.Errorf("%w: signing key: %w", ledgererr.ErrInvalidConfig, err)
		}
		key, err := crypto.UnmarshalEd25519PrivateKey(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: signing key: %w", ledgererr.ErrInvalidConfig, err)
		}
		return key, nil
	case conf.Mnemonic != "":
		key, err := crypto.Mnemonic(conf.Mnemonic).DeriveKey(conf.Index)
		if err != nil {
			return nil, fmt.Errorf("%w: mnemonic: %w", ledgererr.ErrInvalidConfig, err)
		}
		return key, nil
	}
	return nil, fmt.Errorf("%w: account has neither signing key nor mnemonic", ledgererr.ErrInvalidConfig)
}
