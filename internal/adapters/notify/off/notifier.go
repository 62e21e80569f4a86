package off

import (
	"context"
	"fmt"

	"github.com/bnema/tekoai-cli/internal/domain"
	"github.com/bnema/tekoai-cli/internal/ports"
)

// Notifier is selected by notify.mode=none and always refuses permission.
type Notifier struct{}

var _ ports.Notifier = Notifier{}

func (Notifier) RequestPermission(context.Context) error {
	return fmt.Errorf("%w: notifications disabled by configuration", domain.ErrPermissionDenied)
}

func (Notifier) Notify(context.Context, string, string) error {
	return domain.ErrPermissionDenied
}
