// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is one serving surface of the application (HTTP, workers, ...).
// Serve blocks until the surface stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
