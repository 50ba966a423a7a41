package http

import (
	"errors"
	"net/http"
	"time"

	"faithcafe/internal/core/application/usecases/commands"
	"faithcafe/internal/core/application/usecases/queries"
	"faithcafe/internal/core/domain/model/order"
	"faithcafe/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse is the error body every endpoint returns.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps application errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, commands.ErrInvalidCredentials),
		errors.Is(err, commands.ErrNotLoggedIn):
		code = http.StatusUnauthorized
	case errors.Is(err, commands.ErrUsernameTaken),
		errors.Is(err, commands.ErrMenuItemNameTaken),
		errors.Is(err, order.ErrRiderAlreadyAssigned):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrRiderRequired),
		errors.Is(err, commands.ErrCartIsEmpty):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, errorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

type registerUserRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type menuItemRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

type addCartItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type changeQuantityRequest struct {
	Delta int `json:"delta"`
}

type checkoutItemsRequest struct {
	Items []string `json:"items"`
}

type placeOrderRequest struct {
	DeliveryAddress string `json:"deliveryAddress"`
	ContactNumber   string `json:"contactNumber"`
	PaymentMethod   string `json:"paymentMethod"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type assignRiderRequest struct {
	Rider string `json:"rider"`
}

type themeRequest struct {
	Theme string `json:"theme"`
}

type userResponse struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Address       string `json:"address,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
}

type menuItemResponse struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Image       string  `json:"image,omitempty"`
}

type cartLineResponse struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
	Selected bool    `json:"selected"`
}

type cartResponse struct {
	Lines     []cartLineResponse `json:"lines"`
	ItemCount int                `json:"itemCount"`
	Subtotal  float64            `json:"subtotal"`
}

type orderLineResponse struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

type riderResponse struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type orderResponse struct {
	ID              string               `json:"id"`
	Customer        string               `json:"customer"`
	Items           []orderLineResponse  `json:"items"`
	Subtotal        float64              `json:"subtotal"`
	ShippingFee     float64              `json:"shippingFee"`
	Total           float64              `json:"total"`
	Status          string               `json:"status"`
	OrderTime       time.Time            `json:"orderTime"`
	StatusTimes     map[string]time.Time `json:"statusTimes"`
	DeliveryAddress string               `json:"deliveryAddress,omitempty"`
	ContactNumber   string               `json:"contactNumber,omitempty"`
	PaymentMethod   string               `json:"paymentMethod"`
	Rider           *riderResponse       `json:"rider,omitempty"`
	ETA             string               `json:"eta"`
	NeedsRider      bool                 `json:"needsRider"`
}

type trackingResponse struct {
	Tracked *orderResponse  `json:"tracked,omitempty"`
	History []orderResponse `json:"history"`
}

type placedOrderResponse struct {
	ID string `json:"id"`
}

type sessionResponse struct {
	CurrentUser *userResponse `json:"currentUser,omitempty"`
	Theme       string        `json:"theme,omitempty"`
}

func newOrderResponse(view queries.OrderView) orderResponse {
	items := make([]orderLineResponse, 0, len(view.Items))
	for _, line := range view.Items {
		items = append(items, orderLineResponse(line))
	}

	var rider *riderResponse
	if view.Rider != nil {
		rider = &riderResponse{Name: view.Rider.Name, Contact: view.Rider.Contact}
	}

	return orderResponse{
		ID:              view.ID,
		Customer:        view.Customer,
		Items:           items,
		Subtotal:        view.Subtotal,
		ShippingFee:     view.ShippingFee,
		Total:           view.Total,
		Status:          view.Status,
		OrderTime:       view.OrderTime,
		StatusTimes:     view.StatusTimes,
		DeliveryAddress: view.DeliveryAddress,
		ContactNumber:   view.ContactNumber,
		PaymentMethod:   view.PaymentMethod,
		Rider:           rider,
		ETA:             view.ETA,
		NeedsRider:      view.NeedsRider,
	}
}

func newOrderResponses(views []queries.OrderView) []orderResponse {
	responses := make([]orderResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, newOrderResponse(view))
	}
	return responses
}
