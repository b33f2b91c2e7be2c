package delivery

import "context"

// Delivery is a long-running transport that serves until its lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
