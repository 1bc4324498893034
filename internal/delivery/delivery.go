// Package delivery defines the process entry points (HTTP server, ...).
package delivery

import "context"

// Delivery is a long running entry point started by the fx application.
type Delivery interface {
	// Serve blocks until the delivery stops. A clean shutdown returns nil.
	Serve(ctx context.Context) error
}
