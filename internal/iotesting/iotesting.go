// Package iotesting provides shared utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"

	"github.com/avherb/herbdb/pkg/config"
)

// TestDatabaseName is the database used by all integration tests, so
// tests never run against a production database by accident.
const TestDatabaseName = "herbarium_test"

// GetTestConfig returns a configuration for integration tests:
// defaults, HERBDB_TEST_* environment overrides for the connection,
// and the database name pinned to TestDatabaseName.
func GetTestConfig() *config.Config {
	cfg := config.New()

	var opts []config.Option
	if host := os.Getenv("HERBDB_TEST_DB_HOST"); host != "" {
		opts = append(opts, config.OptDatabaseHost(host))
	}
	if user := os.Getenv("HERBDB_TEST_DB_USER"); user != "" {
		opts = append(opts, config.OptDatabaseUser(user))
	}
	if pass := os.Getenv("HERBDB_TEST_DB_PASSWORD"); pass != "" {
		opts = append(opts, config.OptDatabasePassword(pass))
	}
	cfg.Update(opts)

	cfg.Database.Database = TestDatabaseName
	return cfg
}

// GetTestDatabaseConfig returns only the database configuration.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	return &GetTestConfig().Database
}
