package config

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/anyproto/any-trail/accountservice"
	"github.com/anyproto/any-trail/app"
	"github.com/anyproto/any-trail/app/logger"
	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/metric"
)

const CName = "config"

var log = logger.NewNamed(CName)

func NewFromFile(path string) (c *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewFromYaml(data)
}

func NewFromYaml(data []byte) (c *Config, err error) {
	c = &Config{}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return
}

type Config struct {
	Log     logger.Config         `yaml:"log"`
	Metric  metric.Config         `yaml:"metric"`
	Network ledger.Network        `yaml:"network"`
	Account accountservice.Config `yaml:"account"`
}

func (c *Config) Init(a *app.App) (err error) {
	if _, err = c.Network.Package(); err != nil {
		return
	}
	c.Log.ApplyGlobal()
	log.Info("config loaded", zap.String("network", c.Network.Name), zap.String("package", c.Network.PackageID))
	return
}

func (c *Config) Name() (name string) {
	return CName
}

func (c *Config) GetLogger() logger.Config {
	return c.Log
}

func (c *Config) GetMetric() metric.Config {
	return c.Metric
}

func (c *Config) GetNetwork() ledger.Network {
	return c.Network
}

func (c *Config) GetAccount() accountservice.Config {
	return c.Account
}
