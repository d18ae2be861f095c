package database

import (
	"fmt"
	"strings"
)

// Config describes the backing store for the planner. The service runs
// on sqlite out of the box so local development needs no setup;
// postgres is the deployment target.
type Config struct {
	// Driver selects the backend: "sqlite" (default) or "postgres"
	Driver string

	// Path is the sqlite database file
	Path string

	// Postgres connection settings
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// driver returns the normalized driver name, defaulting to sqlite
func (c Config) driver() string {
	d := strings.ToLower(c.Driver)
	if d == "" {
		return "sqlite"
	}
	return d
}

// DSN builds the connection string for the configured driver. Postgres
// uses the URL form, matching the DATABASE_URL convention.
func (c Config) DSN() string {
	switch c.driver() {
	case "postgres", "postgresql":
		dsn := fmt.Sprintf("postgres://%s@%s:%s/%s?sslmode=%s", c.User, c.Host, c.Port, c.Name, c.SSLMode)
		if c.Password != "" {
			dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
		}
		return dsn
	case "sqlite":
		return c.Path
	default:
		return ""
	}
}

// String masks the password so the config can be logged safely
func (c Config) String() string {
	if c.driver() == "sqlite" {
		return fmt.Sprintf("database.Config{Driver: sqlite, Path: %s}", c.Path)
	}
	return fmt.Sprintf("database.Config{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s}",
		c.driver(), c.Host, c.Port, c.User, c.Name, c.SSLMode)
}
