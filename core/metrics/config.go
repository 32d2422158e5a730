package metrics

import "github.com/rozvrh-svg/rozvrh/core/factory"

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
	// PrometheusAddress enables the /metrics endpoint when non-empty.
	PrometheusAddress string `json:"prometheus_address"`
}
