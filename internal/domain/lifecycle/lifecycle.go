// Package lifecycle holds process-wide start/stop settings shared by the
// infrastructure hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook (database ping, HTTP shutdown).
const DefaultTimeout = 10 * time.Second
