package config

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ServerConfig defines the HTTP listeners.
type ServerConfig struct {
	Address string `json:"address" validate:"required,hostname_port"`
	// ReadTimeoutSeconds bounds reading a request including its body.
	ReadTimeoutSeconds int `json:"read_timeout_seconds" validate:"gte=0"`
}

// SetDefaults applies sane defaults.
func (c *ServerConfig) SetDefaults() {
	if c.Address == "" {
		c.Address = ":8080"
	}
	if c.ReadTimeoutSeconds == 0 {
		c.ReadTimeoutSeconds = 10
	}
}

// Validate checks mandatory fields.
func (c ServerConfig) Validate() error {
	return validate.Struct(c)
}
