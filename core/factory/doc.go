// Package factory instantiates pluggable modules, such as event sources and
// metrics sinks, from configuration. A module is selected by its type string
// and receives a map of raw settings which the factory decodes into a typed
// struct.
//
// Example usage:
//
//	reg := factory.NewRegistry[source.Source]()
//	reg.Register("json", func(conf map[string]any) (source.Source, error) {
//	    var c struct{ Path string `json:"path"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return store.NewJSONFileSource(c.Path), nil
//	})
//	src, err := reg.Create(factory.ModuleConfig{Type: "json", Conf: map[string]any{"path": "events.json"}})
package factory
