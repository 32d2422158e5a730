// Package metrics defines how timetable renders are observed. A RenderEvent
// is produced for every weekly or semester render and handed to a Sink.
// Sinks such as the Prometheus and InfluxDB implementations in infra/metrics
// are registered by name and combined with NewMultiSink when more than one
// is configured.
package metrics
