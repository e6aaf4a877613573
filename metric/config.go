package metric

type configSource interface {
	GetMetric() Config
}

type Config struct {
	// Addr is the listen address of the /metrics endpoint, empty disables it
	Addr string `yaml:"addr"`
}
