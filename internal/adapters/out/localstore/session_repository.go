package localstore

import (
	"context"
	"encoding/json"

	"faithcafe/internal/core/domain/model/user"
	"faithcafe/internal/pkg/errs"
)

type sessionRepository struct {
	uow *UnitOfWork
}

// CurrentUser implements ports.SessionRepository.
func (r *sessionRepository) CurrentUser(_ context.Context) (user.Session, error) {
	raw, ok, err := r.uow.sessionGet(keyCurrentUser)
	if err != nil {
		return user.Session{}, err
	}
	if !ok {
		return user.Session{}, errs.NewObjectNotFoundError(keyCurrentUser, nil)
	}

	var session user.Session
	if err = json.Unmarshal(raw, &session); err != nil {
		return user.Session{}, err
	}
	return session, nil
}

// SetCurrentUser implements ports.SessionRepository.
func (r *sessionRepository) SetCurrentUser(_ context.Context, session user.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	r.uow.sessionSet(keyCurrentUser, raw)
	return nil
}

// ClearCurrentUser implements ports.SessionRepository.
func (r *sessionRepository) ClearCurrentUser(_ context.Context) error {
	r.uow.sessionDelete(keyCurrentUser)
	return nil
}

// CheckoutSelection implements ports.SessionRepository. No staged selection
// reads as empty, not as an error.
func (r *sessionRepository) CheckoutSelection(_ context.Context) ([]string, error) {
	raw, ok, err := r.uow.sessionGet(keyCheckoutItems)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var names []string
	if err = json.Unmarshal(raw, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// SetCheckoutSelection implements ports.SessionRepository.
func (r *sessionRepository) SetCheckoutSelection(_ context.Context, names []string) error {
	raw, err := json.Marshal(names)
	if err != nil {
		return err
	}
	r.uow.sessionSet(keyCheckoutItems, raw)
	return nil
}

// ClearCheckoutSelection implements ports.SessionRepository.
func (r *sessionRepository) ClearCheckoutSelection(_ context.Context) error {
	r.uow.sessionDelete(keyCheckoutItems)
	return nil
}

// Theme implements ports.SessionRepository. The value is stored as a bare
// string.
func (r *sessionRepository) Theme(_ context.Context) (string, error) {
	raw, ok, err := r.uow.sessionGet(keyTheme)
	if err != nil || !ok {
		return "", err
	}
	return string(raw), nil
}

// SetTheme implements ports.SessionRepository.
func (r *sessionRepository) SetTheme(_ context.Context, theme string) error {
	r.uow.sessionSet(keyTheme, []byte(theme))
	return nil
}
