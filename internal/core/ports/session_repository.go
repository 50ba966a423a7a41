package ports

import (
	"context"

	"faithcafe/internal/core/domain/model/user"
)

// SessionRepository persists the per-store session state: who is logged in,
// which cart lines are selected for checkout, and the theme preference.
// All three survive restarts and are cleared explicitly.
type SessionRepository interface {
	// CurrentUser returns the logged-in session, or errs.ErrObjectNotFound
	// when nobody is logged in.
	CurrentUser(ctx context.Context) (user.Session, error)

	// SetCurrentUser records a login. The session never carries a password.
	SetCurrentUser(ctx context.Context, session user.Session) error

	// ClearCurrentUser records a logout. Clearing an empty session is a
	// no-op.
	ClearCurrentUser(ctx context.Context) error

	// CheckoutSelection returns the cart line names staged for checkout.
	CheckoutSelection(ctx context.Context) ([]string, error)

	// SetCheckoutSelection stages cart line names for the checkout page.
	SetCheckoutSelection(ctx context.Context, names []string) error

	// ClearCheckoutSelection drops the staged selection after an order is
	// placed or abandoned.
	ClearCheckoutSelection(ctx context.Context) error

	// Theme returns the stored theme preference, or an empty string when
	// none was saved.
	Theme(ctx context.Context) (string, error)

	// SetTheme stores the theme preference.
	SetTheme(ctx context.Context, theme string) error
}
