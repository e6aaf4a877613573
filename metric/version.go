package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/anyproto/any-trail/app"
)

func newVersionsCollector() prometheus.Collector {
	return &versionCollector{prometheus.MustNewConstMetric(prometheus.NewDesc(
		"anytrail_versions",
		"Build information about the client.",
		nil, prometheus.Labels{
			"git_commit": app.GitCommit,
			"git_branch": app.GitBranch,
			"build_date": app.BuildDate,
		},
	), prometheus.GaugeValue, 1)}
}

type versionCollector struct {
	ver prometheus.Metric
}

func (v *versionCollector) Describe(descs chan<- *prometheus.Desc) {
	descs <- v.ver.Desc()
}

func (v *versionCollector) Collect(metrics chan<- prometheus.Metric) {
	metrics <- v.ver
}
