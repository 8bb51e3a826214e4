package robot

import (
	"encoding/json"
	"os"
	"time"

	"github.com/progressrobotics/mycobot-go/pkg/transport"
)

const DefaultConfigFile = "mycobot.json"

// Config holds the connection settings for an arm
type Config struct {
	Port      string `json:"port"`
	BaudRate  int    `json:"baud_rate,omitempty"`
	TimeoutMS int    `json:"timeout_ms,omitempty"`
}

// Baud returns the configured baud rate or the controller default.
func (c *Config) Baud() int {
	if c.BaudRate <= 0 {
		return transport.DefaultBaudRate
	}
	return c.BaudRate
}

// Timeout returns the configured response timeout or the session default.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutMS <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// LoadConfig loads configuration from the default config file
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(DefaultConfigFile)
}

// LoadConfigFrom loads configuration from a specific file
func LoadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save saves configuration to the default config file
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigFile)
}

// SaveTo saves configuration to a specific file
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ConfigExists returns true if the default config file exists
func ConfigExists() bool {
	_, err := os.Stat(DefaultConfigFile)
	return err == nil
}

// Connect opens the configured port and returns a session over it.
func (c *Config) Connect(opts ...Option) (*Robot, error) {
	port, err := transport.Open(c.Port, c.Baud())
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithTimeout(c.Timeout())}, opts...)
	return New(port, opts...), nil
}
