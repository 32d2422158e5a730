package store

import (
	"fmt"

	"github.com/rozvrh-svg/rozvrh/core/factory"
	"github.com/rozvrh-svg/rozvrh/core/source"
)

type pathConfig struct {
	Path string `json:"path"`
}

func decodePath(kind string, conf map[string]any) (string, error) {
	var c pathConfig
	if err := factory.Decode(conf, &c); err != nil {
		return "", err
	}
	if c.Path == "" {
		return "", fmt.Errorf("%s: path is required", kind)
	}
	return c.Path, nil
}

func init() {
	_ = source.Register("json", func(conf map[string]any) (source.Source, error) {
		path, err := decodePath("json", conf)
		if err != nil {
			return nil, err
		}
		return NewJSONFileSource(path), nil
	})

	_ = source.Register("sqlite", func(conf map[string]any) (source.Source, error) {
		path, err := decodePath("sqlite", conf)
		if err != nil {
			return nil, err
		}
		return NewSQLiteSource(path)
	})

	_ = source.Register("postgres", func(conf map[string]any) (source.Source, error) {
		c := PostgresConfig{AutoMigrate: true}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewPostgresSource(c)
	})
}
