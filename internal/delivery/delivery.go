// Package delivery contains the transports that expose the session store.
package delivery

import "context"

// Delivery is a long-running server started after the fx app is up.
type Delivery interface {
	Serve(ctx context.Context) error
}
