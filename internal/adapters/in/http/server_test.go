package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	inhttp "faithcafe/internal/adapters/in/http"
	"faithcafe/internal/adapters/out/localstore"
	"faithcafe/internal/core/application/usecases/commands"
	"faithcafe/internal/core/application/usecases/queries"
	"faithcafe/internal/core/domain/model/rider"
	"faithcafe/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcFactory[T any] func() T

func (f funcFactory[T]) Create() T {
	return f()
}

// newTestServer wires the full stack over an in-memory store with no seed
// fixtures.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	factory := localstore.NewUnitOfWorkFactory(
		localstore.NewMemoryStore(),
		localstore.NewFixtures(t.TempDir()),
	)
	pool := rider.NewPool()
	pricing := services.NewPricingService()

	userUoW := funcFactory[commands.UserUoW](func() commands.UserUoW { return factory.Create() })
	menuUoW := funcFactory[commands.MenuUoW](func() commands.MenuUoW { return factory.Create() })
	cartUoW := funcFactory[commands.CartUoW](func() commands.CartUoW { return factory.Create() })
	sessionUoW := funcFactory[commands.SessionUoW](func() commands.SessionUoW { return factory.Create() })
	orderUoW := funcFactory[commands.OrderUoW](func() commands.OrderUoW { return factory.Create() })
	checkoutUoW := funcFactory[commands.CheckoutUoW](func() commands.CheckoutUoW { return factory.Create() })

	server := inhttp.NewServer(
		inhttp.Commands{
			RegisterUser:       commands.NewRegisterUserCommandHandler(userUoW),
			LoginUser:          commands.NewLoginUserCommandHandler(userUoW),
			LogoutUser:         commands.NewLogoutUserCommandHandler(sessionUoW),
			DeleteUser:         commands.NewDeleteUserCommandHandler(userUoW),
			AddMenuItem:        commands.NewAddMenuItemCommandHandler(menuUoW),
			UpdateMenuItem:     commands.NewUpdateMenuItemCommandHandler(menuUoW),
			DeleteMenuItem:     commands.NewDeleteMenuItemCommandHandler(menuUoW),
			AddCartLine:        commands.NewAddCartLineCommandHandler(cartUoW),
			ChangeCartQuantity: commands.NewChangeCartQuantityCommandHandler(cartUoW),
			RemoveCartLine:     commands.NewRemoveCartLineCommandHandler(cartUoW),
			StageCheckout:      commands.NewStageCheckoutCommandHandler(checkoutUoW),
			SetTheme:           commands.NewSetThemeCommandHandler(sessionUoW),
			PlaceOrder:         commands.NewPlaceOrderCommandHandler(checkoutUoW, pricing),
			UpdateOrderStatus:  commands.NewUpdateOrderStatusCommandHandler(orderUoW, pool),
			AssignRider:        commands.NewAssignRiderCommandHandler(orderUoW, pool),
		},
		inhttp.Queries{
			GetMenu:             queries.NewGetMenuQueryHandler(factory.MenuReader()),
			GetCartSummary:      queries.NewGetCartSummaryQueryHandler(factory.CartReader(), factory.SessionReader()),
			GetOrderBoard:       queries.NewGetOrderBoardQueryHandler(factory.OrderReader()),
			GetCustomerTracking: queries.NewGetCustomerTrackingQueryHandler(factory.OrderReader()),
			GetAvailableRiders:  queries.NewGetAvailableRidersQueryHandler(pool),
			GetSession:          queries.NewGetSessionQueryHandler(factory.SessionReader()),
			GetUsers:            queries.NewGetUsersQueryHandler(factory.UserReader()),
		},
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}

func TestHealth(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestUserLifecycle(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/api/v1/users/register",
		`{"username":"maria","password":"secret","email":"maria@faithcafe.ph"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("duplicate_username_conflicts", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/v1/users/register",
			`{"username":"maria","password":"other","email":"other@faithcafe.ph"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("wrong_password_unauthorized", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/v1/users/login",
			`{"username":"maria","password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("login_returns_session", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/v1/users/login",
			`{"username":"maria","password":"secret"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var session map[string]any
		decode(t, rec, &session)
		assert.Equal(t, "maria", session["username"])
		assert.Equal(t, "customer", session["role"])
		assert.NotContains(t, session, "password")
	})

	t.Run("session_reflects_login", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/v1/session", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var view struct {
			CurrentUser *struct {
				Username string `json:"username"`
			} `json:"currentUser"`
		}
		decode(t, rec, &view)
		require.NotNil(t, view.CurrentUser)
		assert.Equal(t, "maria", view.CurrentUser.Username)
	})

	t.Run("logout_clears_session", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/v1/users/logout", "")
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(t, e, http.MethodGet, "/api/v1/session", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var view map[string]any
		decode(t, rec, &view)
		assert.NotContains(t, view, "currentUser")
	})

	t.Run("delete_user", func(t *testing.T) {
		rec := do(t, e, http.MethodDelete, "/api/v1/users/maria", "")
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(t, e, http.MethodPost, "/api/v1/users/login",
			`{"username":"maria","password":"secret"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestMenuCRUD(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/api/v1/menu",
		`{"name":"Latte","price":120,"description":"Espresso with milk","category":"coffee"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("duplicate_name_conflicts", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/v1/menu", `{"name":"Latte","price":99}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("negative_price_rejected", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/v1/menu", `{"name":"Mocha","price":-5}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("category_filter", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/v1/menu", `{"name":"Muffin","price":10,"category":"pastry"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = do(t, e, http.MethodGet, "/api/v1/menu?category=coffee", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var items []map[string]any
		decode(t, rec, &items)
		require.Len(t, items, 1)
		assert.Equal(t, "Latte", items[0]["name"])
	})

	t.Run("rename", func(t *testing.T) {
		rec := do(t, e, http.MethodPut, "/api/v1/menu/Latte",
			`{"name":"Iced Latte","price":130,"category":"coffee"}`)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(t, e, http.MethodGet, "/api/v1/menu?category=coffee", "")
		var items []map[string]any
		decode(t, rec, &items)
		require.Len(t, items, 1)
		assert.Equal(t, "Iced Latte", items[0]["name"])
	})

	t.Run("delete", func(t *testing.T) {
		rec := do(t, e, http.MethodDelete, "/api/v1/menu/Muffin", "")
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(t, e, http.MethodDelete, "/api/v1/menu/Muffin", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCheckoutFlow(t *testing.T) {
	e := newTestServer(t)

	require.Equal(t, http.StatusCreated, do(t, e, http.MethodPost, "/api/v1/users/register",
		`{"username":"maria","password":"secret","email":"maria@faithcafe.ph","address":"12 Mabini St","contactNumber":"+63 912 000 1111"}`).Code)
	require.Equal(t, http.StatusOK, do(t, e, http.MethodPost, "/api/v1/users/login",
		`{"username":"maria","password":"secret"}`).Code)
	require.Equal(t, http.StatusCreated, do(t, e, http.MethodPost, "/api/v1/menu",
		`{"name":"Latte","price":120,"category":"coffee"}`).Code)
	require.Equal(t, http.StatusCreated, do(t, e, http.MethodPost, "/api/v1/menu",
		`{"name":"Muffin","price":10,"category":"pastry"}`).Code)

	rec := do(t, e, http.MethodPost, "/api/v1/cart/items", `{"name":"Latte","quantity":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = do(t, e, http.MethodPost, "/api/v1/cart/items", `{"name":"Muffin","quantity":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("cart_summary", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/v1/cart", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var cart struct {
			ItemCount int     `json:"itemCount"`
			Subtotal  float64 `json:"subtotal"`
		}
		decode(t, rec, &cart)
		assert.Equal(t, 3, cart.ItemCount)
		assert.InDelta(t, 250, cart.Subtotal, 1e-9)
	})

	t.Run("unknown_item_not_found", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/v1/cart/items", `{"name":"Sisig","quantity":1}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	var orderID string

	t.Run("place_order_cash_fee", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/v1/orders", `{"paymentMethod":"cash"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var placed struct {
			ID string `json:"id"`
		}
		decode(t, rec, &placed)
		require.NotEmpty(t, placed.ID)
		orderID = placed.ID

		// The whole cart was placed and emptied.
		rec = do(t, e, http.MethodGet, "/api/v1/cart", "")
		var cart struct {
			ItemCount int `json:"itemCount"`
		}
		decode(t, rec, &cart)
		assert.Zero(t, cart.ItemCount)
	})

	t.Run("board_shows_order", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/v1/orders", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var board []struct {
			ID              string  `json:"id"`
			Status          string  `json:"status"`
			Subtotal        float64 `json:"subtotal"`
			ShippingFee     float64 `json:"shippingFee"`
			Total           float64 `json:"total"`
			DeliveryAddress string  `json:"deliveryAddress"`
			NeedsRider      bool    `json:"needsRider"`
		}
		decode(t, rec, &board)
		require.Len(t, board, 1)
		assert.Equal(t, orderID, board[0].ID)
		assert.Equal(t, "placed", board[0].Status)
		assert.InDelta(t, 250, board[0].Subtotal, 1e-9)
		assert.InDelta(t, 30, board[0].ShippingFee, 1e-9)
		assert.InDelta(t, 280, board[0].Total, 1e-9)
		assert.Equal(t, "12 Mabini St", board[0].DeliveryAddress)
		assert.True(t, board[0].NeedsRider)
	})

	t.Run("ready_without_rider_rejected", func(t *testing.T) {
		require.Equal(t, http.StatusNoContent, do(t, e, http.MethodPatch,
			"/api/v1/orders/"+orderID+"/status", `{"status":"preparing"}`).Code)

		rec := do(t, e, http.MethodPatch,
			"/api/v1/orders/"+orderID+"/status", `{"status":"ready"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("assign_rider", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/v1/orders/"+orderID+"/rider",
			`{"rider":"Juan Dela Cruz"}`)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(t, e, http.MethodGet, "/api/v1/riders", "")
		var riders []map[string]any
		decode(t, rec, &riders)
		assert.Len(t, riders, 2)

		// Double assignment conflicts.
		rec = do(t, e, http.MethodPost, "/api/v1/orders/"+orderID+"/rider",
			`{"rider":"Maria Santos"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("deliver_releases_rider", func(t *testing.T) {
		for _, status := range []string{"ready", "pickedup", "delivered"} {
			require.Equal(t, http.StatusNoContent, do(t, e, http.MethodPatch,
				"/api/v1/orders/"+orderID+"/status", `{"status":"`+status+`"}`).Code)
		}

		rec := do(t, e, http.MethodGet, "/api/v1/riders", "")
		var riders []map[string]any
		decode(t, rec, &riders)
		assert.Len(t, riders, 3)
	})

	t.Run("tracking", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/v1/orders/tracking?customer=maria", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var tracking struct {
			Tracked *struct {
				ID     string `json:"id"`
				Status string `json:"status"`
				ETA    string `json:"eta"`
				Rider  *struct {
					Name string `json:"name"`
				} `json:"rider"`
			} `json:"tracked"`
			History []map[string]any `json:"history"`
		}
		decode(t, rec, &tracking)
		require.NotNil(t, tracking.Tracked)
		assert.Equal(t, orderID, tracking.Tracked.ID)
		assert.Equal(t, "delivered", tracking.Tracked.Status)
		assert.Equal(t, "Delivered", tracking.Tracked.ETA)
		require.NotNil(t, tracking.Tracked.Rider)
		assert.Equal(t, "Juan Dela Cruz", tracking.Tracked.Rider.Name)

		// The delivered order also shows up in the completed-order history.
		require.Len(t, tracking.History, 1)
		assert.Equal(t, "delivered", tracking.History[0]["status"])
	})

	t.Run("tracking_requires_customer", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/v1/orders/tracking", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCheckoutSelection(t *testing.T) {
	e := newTestServer(t)

	require.Equal(t, http.StatusCreated, do(t, e, http.MethodPost, "/api/v1/users/register",
		`{"username":"maria","password":"secret","email":"maria@faithcafe.ph","address":"12 Mabini St","contactNumber":"+63 912 000 1111"}`).Code)
	require.Equal(t, http.StatusOK, do(t, e, http.MethodPost, "/api/v1/users/login",
		`{"username":"maria","password":"secret"}`).Code)
	require.Equal(t, http.StatusCreated, do(t, e, http.MethodPost, "/api/v1/menu",
		`{"name":"Latte","price":120}`).Code)
	require.Equal(t, http.StatusCreated, do(t, e, http.MethodPost, "/api/v1/menu",
		`{"name":"Muffin","price":10}`).Code)
	require.Equal(t, http.StatusCreated, do(t, e, http.MethodPost, "/api/v1/cart/items",
		`{"name":"Latte","quantity":1}`).Code)
	require.Equal(t, http.StatusCreated, do(t, e, http.MethodPost, "/api/v1/cart/items",
		`{"name":"Muffin","quantity":2}`).Code)

	rec := do(t, e, http.MethodPut, "/api/v1/cart/checkout-items", `{"items":["Latte"]}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, e, http.MethodPost, "/api/v1/orders", `{"paymentMethod":"card"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Only the selected line was placed; the muffins stay in the cart.
	rec = do(t, e, http.MethodGet, "/api/v1/cart", "")
	var cart struct {
		ItemCount int `json:"itemCount"`
		Lines     []struct {
			Name string `json:"name"`
		} `json:"lines"`
	}
	decode(t, rec, &cart)
	assert.Equal(t, 2, cart.ItemCount)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "Muffin", cart.Lines[0].Name)

	// Card payment ships free.
	rec = do(t, e, http.MethodGet, "/api/v1/orders", "")
	var board []struct {
		ShippingFee float64 `json:"shippingFee"`
		Total       float64 `json:"total"`
	}
	decode(t, rec, &board)
	require.Len(t, board, 1)
	assert.Zero(t, board[0].ShippingFee)
	assert.InDelta(t, 120, board[0].Total, 1e-9)
}

func TestPlaceOrderGuards(t *testing.T) {
	e := newTestServer(t)

	t.Run("not_logged_in", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/v1/orders", `{"paymentMethod":"cash"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("empty_cart", func(t *testing.T) {
		require.Equal(t, http.StatusCreated, do(t, e, http.MethodPost, "/api/v1/users/register",
			`{"username":"maria","password":"secret","email":"maria@faithcafe.ph"}`).Code)
		require.Equal(t, http.StatusOK, do(t, e, http.MethodPost, "/api/v1/users/login",
			`{"username":"maria","password":"secret"}`).Code)

		rec := do(t, e, http.MethodPost, "/api/v1/orders", `{"paymentMethod":"cash"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("unknown_payment_method", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/v1/orders", `{"paymentMethod":"barter"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestThemePreference(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPut, "/api/v1/session/theme", `{"theme":"dark"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/v1/session", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var view struct {
		Theme string `json:"theme"`
	}
	decode(t, rec, &view)
	assert.Equal(t, "dark", view.Theme)

	rec = do(t, e, http.MethodPut, "/api/v1/session/theme", `{"theme":"sepia"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
