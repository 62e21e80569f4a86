package ports

import (
	"context"

	"github.com/bnema/tekoai-cli/internal/domain"
)

// SessionStore persists the signed-in operator. Get returns domain.ErrSessionNotFound when
// nobody is signed in.
type SessionStore interface {
	Get(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Delete(ctx context.Context) error
}
