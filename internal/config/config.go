package config

import "time"

// Templates overrides the presence message templates. Each template is a
// printf-style format taking the user name as its single argument; empty
// values keep the built-in defaults.
type Templates struct {
	Welcome      string `mapstructure:"welcome" yaml:"welcome,omitempty"`
	Connected    string `mapstructure:"connected" yaml:"connected,omitempty"`
	Disconnected string `mapstructure:"disconnected" yaml:"disconnected,omitempty"`
}

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	EventBuffer       int           `mapstructure:"event_buffer" yaml:"event_buffer"`
	Templates         Templates     `mapstructure:"templates" yaml:"templates,omitempty"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		EventBuffer:       16,
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.EventBuffer != 0 {
		c.EventBuffer = other.EventBuffer
	}
	if other.Templates.Welcome != "" {
		c.Templates.Welcome = other.Templates.Welcome
	}
	if other.Templates.Connected != "" {
		c.Templates.Connected = other.Templates.Connected
	}
	if other.Templates.Disconnected != "" {
		c.Templates.Disconnected = other.Templates.Disconnected
	}
}
