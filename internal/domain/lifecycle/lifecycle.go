// Package lifecycle holds timing constants shared by start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start and shutdown hook.
const DefaultTimeout = 10 * time.Second
