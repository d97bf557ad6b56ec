package delivery

import "context"

// Delivery is a long-running front end started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
