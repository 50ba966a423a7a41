// Package http is the inbound REST adapter. It translates HTTP requests
// into commands and queries and renders the read models as JSON.
package http

import (
	"net/http"

	"faithcafe/internal/core/application/usecases/commands"
	"faithcafe/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Commands groups the command handlers the server dispatches to.
type Commands struct {
	RegisterUser       commands.RegisterUserCommandHandler
	LoginUser          commands.LoginUserCommandHandler
	LogoutUser         commands.LogoutUserCommandHandler
	DeleteUser         commands.DeleteUserCommandHandler
	AddMenuItem        commands.AddMenuItemCommandHandler
	UpdateMenuItem     commands.UpdateMenuItemCommandHandler
	DeleteMenuItem     commands.DeleteMenuItemCommandHandler
	AddCartLine        commands.AddCartLineCommandHandler
	ChangeCartQuantity commands.ChangeCartQuantityCommandHandler
	RemoveCartLine     commands.RemoveCartLineCommandHandler
	StageCheckout      commands.StageCheckoutCommandHandler
	SetTheme           commands.SetThemeCommandHandler
	PlaceOrder         commands.PlaceOrderCommandHandler
	UpdateOrderStatus  commands.UpdateOrderStatusCommandHandler
	AssignRider        commands.AssignRiderCommandHandler
}

// Queries groups the query handlers the server dispatches to.
type Queries struct {
	GetMenu             queries.GetMenuQueryHandler
	GetCartSummary      queries.GetCartSummaryQueryHandler
	GetOrderBoard       queries.GetOrderBoardQueryHandler
	GetCustomerTracking queries.GetCustomerTrackingQueryHandler
	GetAvailableRiders  queries.GetAvailableRidersQueryHandler
	GetSession          queries.GetSessionQueryHandler
	GetUsers            queries.GetUsersQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(c Commands, q Queries) *Server {
	return &Server{
		commands: c,
		queries:  q,
	}
}

// RegisterRoutes attaches every route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.POST("/users/register", s.RegisterUser)
	v1.POST("/users/login", s.LoginUser)
	v1.POST("/users/logout", s.LogoutUser)
	v1.DELETE("/users/:username", s.DeleteUser)
	v1.GET("/users", s.GetUsers)

	v1.GET("/menu", s.GetMenu)
	v1.POST("/menu", s.AddMenuItem)
	v1.PUT("/menu/:name", s.UpdateMenuItem)
	v1.DELETE("/menu/:name", s.DeleteMenuItem)

	v1.GET("/cart", s.GetCart)
	v1.POST("/cart/items", s.AddCartItem)
	v1.PATCH("/cart/items/:name", s.ChangeCartItemQuantity)
	v1.DELETE("/cart/items/:name", s.RemoveCartItem)
	v1.PUT("/cart/checkout-items", s.StageCheckout)

	v1.POST("/orders", s.PlaceOrder)
	v1.GET("/orders", s.GetOrderBoard)
	v1.GET("/orders/tracking", s.GetCustomerTracking)
	v1.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	v1.POST("/orders/:id/rider", s.AssignRider)

	v1.GET("/riders", s.GetAvailableRiders)

	v1.GET("/session", s.GetSession)
	v1.PUT("/session/theme", s.SetTheme)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
