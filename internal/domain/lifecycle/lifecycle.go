// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations
// (database pings, server drain, hub stop).
const DefaultTimeout = 15 * time.Second
