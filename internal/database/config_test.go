package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		config   Config
		expected string
	}{
		{
			name:     "sqlite uses the file path",
			config:   Config{Driver: "sqlite", Path: "grocery.sqlite"},
			expected: "grocery.sqlite",
		},
		{
			name:     "empty driver defaults to sqlite",
			config:   Config{Path: "grocery.sqlite"},
			expected: "grocery.sqlite",
		},
		{
			name: "postgres builds a URL",
			config: Config{
				Driver: "postgres", Host: "localhost", Port: "5432",
				User: "trishareddy", Name: "grocery_db", SSLMode: "disable",
			},
			expected: "postgres://trishareddy@localhost:5432/grocery_db?sslmode=disable",
		},
		{
			name: "postgres includes the password when set",
			config: Config{
				Driver: "postgres", Host: "db", Port: "5432",
				User: "app", Password: "s3cret", Name: "grocery_db", SSLMode: "require",
			},
			expected: "postgres://app:s3cret@db:5432/grocery_db?sslmode=require",
		},
		{
			name:     "unknown driver yields no DSN",
			config:   Config{Driver: "oracle"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestConfigStringMasksPassword(t *testing.T) {
	cfg := Config{
		Driver: "postgres", Host: "db", Port: "5432",
		User: "app", Password: "s3cret", Name: "grocery_db", SSLMode: "require",
	}
	masked := cfg.String()
	assert.NotContains(t, masked, "s3cret")
	assert.Contains(t, masked, "[REDACTED]")
}

func TestOpenSQLite(t *testing.T) {
	db, err := Open(Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NotNil(t, db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := open(Config{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}
