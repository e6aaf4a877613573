package testconf

import (
	"github.com/anyproto/any-trail/accountservice"
	"github.com/anyproto/any-trail/app"
	"github.com/anyproto/any-trail/app/logger"
	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/metric"
)

// New returns a config component for tests, metrics endpoint disabled
func New(network ledger.Network) *Config {
	return &Config{Network: network}
}

type Config struct {
	Network ledger.Network
	Account accountservice.Config
}

func (c *Config) Init(a *app.App) (err error) {
	return
}

func (c *Config) Name() (name string) {
	return "config"
}

func (c *Config) GetLogger() logger.Config {
	return logger.Config{DefaultLevel: "debug"}
}

func (c *Config) GetMetric() metric.Config {
	return metric.Config{}
}

func (c *Config) GetNetwork() ledger.Network {
	return c.Network
}

func (c *Config) GetAccount() accountservice.Config {
	return c.Account
}
