// Package lifecycle holds shared constants for application start and stop
// coordination.
package lifecycle

import "time"

// DefaultTimeout bounds how long a single lifecycle hook may take.
const DefaultTimeout = 10 * time.Second
