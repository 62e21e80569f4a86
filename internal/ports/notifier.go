package ports

import "context"

type Notifier interface {
	// RequestPermission returns an error wrapping domain.ErrPermissionDenied when notifications
	// cannot be shown.
	RequestPermission(ctx context.Context) error
	Notify(ctx context.Context, title, body string) error
}
