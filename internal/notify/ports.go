package notify

import "context"

type Notificator interface {
	// Notify pushes an operational error to the admin channel.
	Notify(ctx context.Context, err error, details string) error
}
