// Package bootstrap assembles the application's components at startup.
package bootstrap

import "time"

// Event system defaults
const (
	EventDefaultMaxRetries = 3
	EventDefaultRetryDelay = 2 * time.Second

	DirPermission = 0o755
)

// Event log retention
const DefaultRetentionDays = 30
