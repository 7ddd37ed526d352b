package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/kokoroskosv-git/Parking-slot-app/internal/domain"
)

// ServerConfig holds the HTTP server settings. Timeouts are seconds.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig holds the PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig holds the logger settings.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig holds the Prometheus settings.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// LocationConfig is one parking location with its capacity.
type LocationConfig struct {
	Name     string `toml:"name"`
	Capacity int    `toml:"capacity"`
}

// RestrictedGroupConfig is the group of users limited to a location subset.
type RestrictedGroupConfig struct {
	Members          []string `toml:"members"`
	AllowedLocations []string `toml:"allowed_locations"`
}

// ExecutiveConfig describes the standing reservation holder.
type ExecutiveConfig struct {
	Name         string `toml:"name"`
	HomeLocation string `toml:"home_location"`
	PrebookUntil string `toml:"prebook_until"` // YYYY-MM-DD
}

// ParkingConfig is the static allocation configuration: users,
// locations, the restricted group and the executive.
type ParkingConfig struct {
	Users           []string              `toml:"users"`
	Locations       []LocationConfig      `toml:"locations"`
	RestrictedGroup RestrictedGroupConfig `toml:"restricted_group"`
	Executive       ExecutiveConfig       `toml:"executive"`
}

// Config is the full service configuration loaded from config.toml.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Parking  ParkingConfig  `toml:"parking"`
}

// Load reads the TOML configuration from path. A .env file in the
// working directory, when present, supplies credential overrides
// (DATABASE_USER, DATABASE_PASSWORD) so secrets stay out of config.toml.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if user := os.Getenv("DATABASE_USER"); user != "" {
		cfg.Database.User = user
	}
	if password := os.Getenv("DATABASE_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.Server.HTTPPort == 0 {
		return fmt.Errorf("server.http_port is required")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("database.host and database.dbname are required")
	}
	if len(c.Parking.Users) == 0 {
		return fmt.Errorf("parking.users must not be empty")
	}
	if len(c.Parking.Locations) == 0 {
		return fmt.Errorf("parking.locations must not be empty")
	}

	known := make(map[string]bool, len(c.Parking.Locations))
	for _, l := range c.Parking.Locations {
		if l.Name == "" {
			return fmt.Errorf("parking.locations: name is required")
		}
		if l.Capacity <= 0 {
			return fmt.Errorf("parking.locations: capacity for %q must be positive", l.Name)
		}
		if known[l.Name] {
			return fmt.Errorf("parking.locations: duplicate location %q", l.Name)
		}
		known[l.Name] = true
	}

	for _, name := range c.Parking.RestrictedGroup.AllowedLocations {
		if !known[name] {
			return fmt.Errorf("parking.restricted_group: unknown location %q", name)
		}
	}

	if c.Parking.Executive.Name == "" {
		return fmt.Errorf("parking.executive.name is required")
	}
	if !known[c.Parking.Executive.HomeLocation] {
		return fmt.Errorf("parking.executive: unknown home location %q", c.Parking.Executive.HomeLocation)
	}
	if _, err := time.Parse(domain.DateFormat, c.Parking.Executive.PrebookUntil); err != nil {
		return fmt.Errorf("parking.executive.prebook_until: expected YYYY-MM-DD: %w", err)
	}

	return nil
}

// StaticConfig converts the parking section into the domain
// configuration injected into the allocator and reservation manager.
func (c *Config) StaticConfig() domain.StaticConfig {
	locations := make([]domain.Location, len(c.Parking.Locations))
	for i, l := range c.Parking.Locations {
		locations[i] = domain.Location{Name: l.Name, Capacity: l.Capacity}
	}

	// Validated in Load.
	prebookUntil, _ := time.Parse(domain.DateFormat, c.Parking.Executive.PrebookUntil)

	return domain.StaticConfig{
		Users:     c.Parking.Users,
		Locations: locations,
		RestrictedGroup: domain.RestrictedGroup{
			Members:          c.Parking.RestrictedGroup.Members,
			AllowedLocations: c.Parking.RestrictedGroup.AllowedLocations,
		},
		Executive: domain.Executive{
			Name:         c.Parking.Executive.Name,
			HomeLocation: c.Parking.Executive.HomeLocation,
			PrebookUntil: prebookUntil,
		},
	}
}
