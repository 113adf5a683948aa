package config

import "os"

// Version is the service version reported by the root and health endpoints.
// Overridable through APP_VERSION for CI-stamped builds.
var Version = "6.0.0"

func init() {
	if v := os.Getenv("APP_VERSION"); v != "" {
		Version = v
	}
}
