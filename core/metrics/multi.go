package metrics

// MultiSink fans render events out to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRender forwards the event to every sink. All sinks are attempted and
// the first error encountered is returned.
func (m *MultiSink) RecordRender(ev RenderEvent) error {
	var first error
	for _, s := range m.Sinks {
		if err := s.RecordRender(ev); err != nil && first == nil {
			first = err
		}
	}
	return first
}
