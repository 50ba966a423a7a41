package http

import (
	"net/http"

	"faithcafe/internal/core/application/usecases/commands"
	"faithcafe/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// RegisterUser handles POST /api/v1/users/register.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var request registerUserRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(request.Username, request.Password,
		request.Email, request.Address, request.ContactNumber)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.RegisterUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// LoginUser handles POST /api/v1/users/login. A successful login persists
// the session record and returns it.
func (s *Server) LoginUser(ctx echo.Context) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLoginUserCommand(request.Username, request.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.LoginUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	view, err := s.queries.GetSession.Handle(ctx.Request().Context(), queries.NewGetSessionQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	if view.CurrentUser == nil {
		return writeError(ctx, commands.ErrInvalidCredentials)
	}

	session := view.CurrentUser
	return ctx.JSON(http.StatusOK, userResponse{
		Username:      session.Username,
		Email:         session.Email,
		Role:          session.Role,
		Address:       session.Address,
		ContactNumber: session.ContactNumber,
	})
}

// LogoutUser handles POST /api/v1/users/logout.
func (s *Server) LogoutUser(ctx echo.Context) error {
	cmd := commands.NewLogoutUserCommand()

	if err := s.commands.LogoutUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/v1/users/:username.
func (s *Server) DeleteUser(ctx echo.Context) error {
	cmd, err := commands.NewDeleteUserCommand(ctx.Param("username"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.DeleteUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUsers handles GET /api/v1/users.
func (s *Server) GetUsers(ctx echo.Context) error {
	query := queries.NewGetUsersQuery()

	views, err := s.queries.GetUsers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]userResponse, 0, len(views))
	for _, view := range views {
		response = append(response, userResponse{
			Username:      view.Username,
			Email:         view.Email,
			Role:          view.Role,
			Address:       view.Address,
			ContactNumber: view.ContactNumber,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}
