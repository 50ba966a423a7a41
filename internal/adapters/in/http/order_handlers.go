package http

import (
	"net/http"

	"faithcafe/internal/core/application/usecases/commands"
	"faithcafe/internal/core/application/usecases/queries"
	"faithcafe/internal/core/domain/model/kernel"
	"faithcafe/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// PlaceOrder handles POST /api/v1/orders. Address and contact fall back to
// the logged-in user's profile when omitted.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request placeOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	payment, err := order.PaymentMethodFromString(request.PaymentMethod)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(request.DeliveryAddress,
		request.ContactNumber, payment)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.commands.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, placedOrderResponse{ID: id.String()})
}

// GetOrderBoard handles GET /api/v1/orders. Active orders come before
// completed ones, most recent first within each group.
func (s *Server) GetOrderBoard(ctx echo.Context) error {
	query := queries.NewGetOrderBoardQuery()

	views, err := s.queries.GetOrderBoard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderResponses(views))
}

// GetCustomerTracking handles GET /api/v1/orders/tracking?customer=.
func (s *Server) GetCustomerTracking(ctx echo.Context) error {
	query, err := queries.NewGetCustomerTrackingQuery(ctx.QueryParam("customer"))
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.queries.GetCustomerTracking.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := trackingResponse{
		History: newOrderResponses(view.History),
	}
	if view.Tracked != nil {
		tracked := newOrderResponse(*view.Tracked)
		response.Tracked = &tracked
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var request updateStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignRider handles POST /api/v1/orders/:id/rider.
func (s *Server) AssignRider(ctx echo.Context) error {
	var request assignRiderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignRiderCommand(id, request.Rider)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.AssignRider.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableRiders handles GET /api/v1/riders.
func (s *Server) GetAvailableRiders(ctx echo.Context) error {
	query := queries.NewGetAvailableRidersQuery()

	views, err := s.queries.GetAvailableRiders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]riderResponse, 0, len(views))
	for _, view := range views {
		response = append(response, riderResponse(view))
	}

	return ctx.JSON(http.StatusOK, response)
}
