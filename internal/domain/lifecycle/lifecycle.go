// Package lifecycle holds shared start/stop constants for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds connect, ping and graceful shutdown steps.
const DefaultTimeout = 10 * time.Second
