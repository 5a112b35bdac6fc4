// Package lifecycle holds shared startup and shutdown constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown steps.
const DefaultTimeout = 10 * time.Second
