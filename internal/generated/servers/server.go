package servers

import (
	"fmt"
	"net/http"

	"cafe/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Place an order
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context, params PlaceOrderParams) error
	// Get an order with its items
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId, params GetOrderParams) error
	// Replace a not yet started item
	// (PUT /api/v1/orders/{orderId}/items/{itemName})
	ReplaceItem(ctx echo.Context, orderId OrderId, itemName ItemName, params ReplaceItemParams) error
	// Advance the status of an item
	// (POST /api/v1/orders/{orderId}/items/{itemName}/status)
	AdvanceItemStatus(ctx echo.Context, orderId OrderId, itemName ItemName, params AdvanceItemStatusParams) error
	// Set the paid flag
	// (PUT /api/v1/orders/{orderId}/paid)
	SetPaidStatus(ctx echo.Context, orderId OrderId, params SetPaidStatusParams) error
	// Latest item rows of one login
	// (GET /api/v1/history/recent)
	GetRecentHistory(ctx echo.Context, params GetRecentHistoryParams) error
	// Item rows updated in [from, to)
	// (GET /api/v1/history/window)
	GetWindowHistory(ctx echo.Context, params GetWindowHistoryParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// PlaceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	var params PlaceOrderParams
	var err error

	params.XUserLogin, err = bindUserLogin(ctx)
	if err != nil {
		return err
	}

	return w.Handler.PlaceOrder(ctx, params)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	var params GetOrderParams
	params.XUserLogin, err = bindUserLogin(ctx)
	if err != nil {
		return err
	}

	return w.Handler.GetOrder(ctx, orderId, params)
}

// ReplaceItem converts echo context to params.
func (w *ServerInterfaceWrapper) ReplaceItem(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}
	itemName, err := bindItemName(ctx)
	if err != nil {
		return err
	}

	var params ReplaceItemParams
	params.XUserLogin, err = bindUserLogin(ctx)
	if err != nil {
		return err
	}

	return w.Handler.ReplaceItem(ctx, orderId, itemName, params)
}

// AdvanceItemStatus converts echo context to params.
func (w *ServerInterfaceWrapper) AdvanceItemStatus(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}
	itemName, err := bindItemName(ctx)
	if err != nil {
		return err
	}

	var params AdvanceItemStatusParams
	params.XUserLogin, err = bindUserLogin(ctx)
	if err != nil {
		return err
	}

	return w.Handler.AdvanceItemStatus(ctx, orderId, itemName, params)
}

// SetPaidStatus converts echo context to params.
func (w *ServerInterfaceWrapper) SetPaidStatus(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	var params SetPaidStatusParams
	params.XUserLogin, err = bindUserLogin(ctx)
	if err != nil {
		return err
	}

	return w.Handler.SetPaidStatus(ctx, orderId, params)
}

// GetRecentHistory converts echo context to params.
func (w *ServerInterfaceWrapper) GetRecentHistory(ctx echo.Context) error {
	var params GetRecentHistoryParams
	var err error

	err = runtime.BindQueryParameter("form", true, false, "login", ctx.QueryParams(), &params.Login)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter login: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	params.XUserLogin, err = bindUserLogin(ctx)
	if err != nil {
		return err
	}

	return w.Handler.GetRecentHistory(ctx, params)
}

// GetWindowHistory converts echo context to params.
func (w *ServerInterfaceWrapper) GetWindowHistory(ctx echo.Context) error {
	var params GetWindowHistoryParams
	var err error

	err = runtime.BindQueryParameter("form", true, false, "from", ctx.QueryParams(), &params.From)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter from: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "to", ctx.QueryParams(), &params.To)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter to: %s", err))
	}

	params.XUserLogin, err = bindUserLogin(ctx)
	if err != nil {
		return err
	}

	return w.Handler.GetWindowHistory(ctx, params)
}

func bindOrderId(ctx echo.Context) (OrderId, error) {
	var orderId OrderId
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}
	return orderId, nil
}

func bindItemName(ctx echo.Context) (ItemName, error) {
	var itemName ItemName
	err := runtime.BindStyledParameterWithOptions("simple", "itemName", ctx.Param("itemName"), &itemName,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter itemName: %s", err))
	}
	return itemName, nil
}

func bindUserLogin(ctx echo.Context) (UserLogin, error) {
	valueList, found := ctx.Request().Header[http.CanonicalHeaderKey("X-User-Login")]
	if !found {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Header parameter X-User-Login is required, but not found")
	}
	if n := len(valueList); n != 1 {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-User-Login, got %d", n))
	}

	var login UserLogin
	err := runtime.BindStyledParameterWithOptions("simple", "X-User-Login", valueList[0], &login,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-User-Login: %s", err))
	}
	return login, nil
}

// EchoRouter is the subset of echo routing used to register handlers.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/orders", wrapper.PlaceOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.PUT(baseURL+"/api/v1/orders/:orderId/items/:itemName", wrapper.ReplaceItem)
	router.POST(baseURL+"/api/v1/orders/:orderId/items/:itemName/status", wrapper.AdvanceItemStatus)
	router.PUT(baseURL+"/api/v1/orders/:orderId/paid", wrapper.SetPaidStatus)
	router.GET(baseURL+"/api/v1/history/recent", wrapper.GetRecentHistory)
	router.GET(baseURL+"/api/v1/history/window", wrapper.GetWindowHistory)
}

// GetSwagger returns the OpenAPI document the routes above are bound from.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	return swagger, nil
}
