package pg

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPort is the standard PostgreSQL server port.
	DefaultPort = 5432

	// DefaultUser is the user assumed when none is configured.
	DefaultUser = "postgres"
)

// Config holds the connection attributes recognized by the adapter.
type Config struct {
	// Host is the server hostname or address. Required.
	Host string `yaml:"host"`

	// Port is the server port. Defaults to 5432.
	Port int `yaml:"port"`

	// User is the login role. Defaults to "postgres".
	User string `yaml:"user"`

	// Password is the login password. Optional.
	Password string `yaml:"password"`

	// Database is the database name. Optional; the server defaults to the
	// user's database when empty.
	Database string `yaml:"database"`
}

// ConfigFromYAML parses a Config from YAML data.
//
// Parameters:
//   - data: YAML document with host/port/user/password/database keys
//
// Returns:
//   - Config: The parsed configuration with defaults applied
//   - error: Parse error, or a validation error if host is missing
func ConfigFromYAML(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("pg: parsing config: %w", err)
	}

	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that required attributes are present.
func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("pg: config requires a host")
	}

	return nil
}

// withDefaults returns a copy with unset attributes filled in.
func (c Config) withDefaults() Config {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.User == "" {
		c.User = DefaultUser
	}

	return c
}

// dsn renders the config as a keyword/value connection string for pgx.
func (c Config) dsn() string {
	parts := []string{
		fmt.Sprintf("host=%s", c.Host),
		fmt.Sprintf("port=%d", c.Port),
		fmt.Sprintf("user=%s", c.User),
	}
	if c.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", c.Password))
	}
	if c.Database != "" {
		parts = append(parts, fmt.Sprintf("dbname=%s", c.Database))
	}

	return strings.Join(parts, " ")
}
