package http

import (
	"net/http"

	"faithcafe/internal/core/application/usecases/commands"
	"faithcafe/internal/core/application/usecases/queries"
	"faithcafe/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetMenu handles GET /api/v1/menu. An optional category query parameter
// filters the catalog.
func (s *Server) GetMenu(ctx echo.Context) error {
	query := queries.NewGetMenuQuery(ctx.QueryParam("category"))

	views, err := s.queries.GetMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]menuItemResponse, 0, len(views))
	for _, view := range views {
		response = append(response, menuItemResponse(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddMenuItem handles POST /api/v1/menu.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	var request menuItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoney(request.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddMenuItemCommand(request.Name, price,
		request.Description, request.Category, request.Image)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.AddMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateMenuItem handles PUT /api/v1/menu/:name. The path parameter is the
// current name; the body may carry a new one.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	var request menuItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoney(request.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(ctx.Param("name"), request.Name,
		price, request.Description, request.Category, request.Image)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.UpdateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteMenuItem handles DELETE /api/v1/menu/:name.
func (s *Server) DeleteMenuItem(ctx echo.Context) error {
	cmd, err := commands.NewDeleteMenuItemCommand(ctx.Param("name"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.DeleteMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
