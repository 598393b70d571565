// Package lifecycle holds shared timing values for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start/stop hook and graceful shutdown.
const DefaultTimeout = 10 * time.Second
