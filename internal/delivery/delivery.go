// Package delivery defines how the application is exposed to the outside world.
package delivery

import "context"

// Delivery is a transport that serves the use cases until it is stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
