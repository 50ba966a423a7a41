package http

import (
	"net/http"

	"faithcafe/internal/core/application/usecases/commands"
	"faithcafe/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetSession handles GET /api/v1/session: who is logged in and which theme
// to render. An anonymous session returns an empty body, not an error.
func (s *Server) GetSession(ctx echo.Context) error {
	query := queries.NewGetSessionQuery()

	view, err := s.queries.GetSession.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := sessionResponse{Theme: view.Theme}
	if view.CurrentUser != nil {
		response.CurrentUser = &userResponse{
			Username:      view.CurrentUser.Username,
			Email:         view.CurrentUser.Email,
			Role:          view.CurrentUser.Role,
			Address:       view.CurrentUser.Address,
			ContactNumber: view.CurrentUser.ContactNumber,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetTheme handles PUT /api/v1/session/theme.
func (s *Server) SetTheme(ctx echo.Context) error {
	var request themeRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetThemeCommand(request.Theme)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.SetTheme.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
