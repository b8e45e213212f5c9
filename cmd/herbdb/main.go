// Package main provides the herbdb CLI application.
// herbdb manages the lifecycle of the herbarium PostgreSQL database:
// schema creation, document import, and read-side inspection.
package main

import (
	"os"
)

var (
	// Version and Build are set by build flags.
	Version = "dev"
	Build   = "unknown"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
