package queries

import (
	"context"
	"errors"

	"faithcafe/internal/core/ports"
	"faithcafe/internal/pkg/errs"
)

// GetSessionQueryHandler serves the header state: who is logged in and
// which theme to render.
type GetSessionQueryHandler struct {
	sessionRepo ports.SessionRepository
}

// NewGetSessionQueryHandler creates a handler for session queries.
func NewGetSessionQueryHandler(sessionRepo ports.SessionRepository) GetSessionQueryHandler {
	return GetSessionQueryHandler{sessionRepo: sessionRepo}
}

// Handle executes the session query. An anonymous session is not an error.
func (h GetSessionQueryHandler) Handle(ctx context.Context, query GetSessionQuery) (SessionView, error) {
	if err := query.Validate(); err != nil {
		return SessionView{}, err
	}

	view := SessionView{}

	session, err := h.sessionRepo.CurrentUser(ctx)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return SessionView{}, err
	}
	if err == nil {
		view.CurrentUser = &session
	}

	theme, err := h.sessionRepo.Theme(ctx)
	if err != nil {
		return SessionView{}, err
	}
	view.Theme = theme

	return view, nil
}
