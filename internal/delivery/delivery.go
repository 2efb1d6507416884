// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is implemented by transport servers that can block on Serve
// until the process shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
