package http

import (
	"net/http"

	"faithcafe/internal/core/application/usecases/commands"
	"faithcafe/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	query := queries.NewGetCartSummaryQuery()

	view, err := s.queries.GetCartSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	lines := make([]cartLineResponse, 0, len(view.Lines))
	for _, line := range view.Lines {
		lines = append(lines, cartLineResponse(line))
	}

	return ctx.JSON(http.StatusOK, cartResponse{
		Lines:     lines,
		ItemCount: view.ItemCount,
		Subtotal:  view.Subtotal,
	})
}

// AddCartItem handles POST /api/v1/cart/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var request addCartItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddCartLineCommand(request.Name, request.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.AddCartLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ChangeCartItemQuantity handles PATCH /api/v1/cart/items/:name. The delta
// is applied to the current quantity; at zero or below the line is removed.
func (s *Server) ChangeCartItemQuantity(ctx echo.Context) error {
	var request changeQuantityRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeCartQuantityCommand(ctx.Param("name"), request.Delta)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.ChangeCartQuantity.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:name.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	cmd, err := commands.NewRemoveCartLineCommand(ctx.Param("name"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.RemoveCartLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StageCheckout handles PUT /api/v1/cart/checkout-items. The staged names
// select which cart lines the next order covers.
func (s *Server) StageCheckout(ctx echo.Context) error {
	var request checkoutItemsRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStageCheckoutCommand(request.Items)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.StageCheckout.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
