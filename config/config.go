// Package config registers all configuration sections.
package config

// Initialize exists to force this package's init functions to run, which
// registers every section below with pkg/config.
func Initialize() {
}
