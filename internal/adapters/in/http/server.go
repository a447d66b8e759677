package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cafe/internal/core/application/usecases/commands"
	"cafe/internal/core/application/usecases/queries"
	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/domain/model/user"
	"cafe/internal/generated/servers"
	"cafe/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	replaceItemHandler       commands.ReplaceItemCommandHandler
	advanceItemStatusHandler commands.AdvanceItemStatusCommandHandler
	setPaidStatusHandler     commands.SetPaidStatusCommandHandler

	// Query handlers
	getSessionHandler       queries.GetSessionQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	getRecentHistoryHandler queries.GetRecentHistoryQueryHandler
	getWindowHistoryHandler queries.GetWindowHistoryQueryHandler

	logger *slog.Logger
	now    func() time.Time
}

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	PlaceOrder        commands.PlaceOrderCommandHandler
	ReplaceItem       commands.ReplaceItemCommandHandler
	AdvanceItemStatus commands.AdvanceItemStatusCommandHandler
	SetPaidStatus     commands.SetPaidStatusCommandHandler
	GetSession        queries.GetSessionQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	GetRecentHistory  queries.GetRecentHistoryQueryHandler
	GetWindowHistory  queries.GetWindowHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		placeOrderHandler:        handlers.PlaceOrder,
		replaceItemHandler:       handlers.ReplaceItem,
		advanceItemStatusHandler: handlers.AdvanceItemStatus,
		setPaidStatusHandler:     handlers.SetPaidStatus,
		getSessionHandler:        handlers.GetSession,
		getOrderHandler:          handlers.GetOrder,
		getRecentHistoryHandler:  handlers.GetRecentHistory,
		getWindowHistoryHandler:  handlers.GetWindowHistory,
		logger:                   logger.With("component", "http_server"),
		now:                      time.Now,
	}
}

// session resolves the caller named by the X-User-Login header. An unknown
// login is answered with 401.
func (s *Server) session(ctx echo.Context, login string) (user.Session, error) {
	query, err := queries.NewGetSessionQuery(login)
	if err != nil {
		return user.Session{}, err
	}

	session, err := s.getSessionHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return user.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "unknown user "+login)
	}
	return session, err
}

func (s *Server) respond(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return ctx.JSON(httpErr.Code, servers.Error{Code: httpErr.Code, Message: fmt.Sprint(httpErr.Message)})
	}
	return s.fail(ctx, err)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context, params servers.PlaceOrderParams) error {
	var body servers.PlaceOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	session, err := s.session(ctx, params.XUserLogin)
	if err != nil {
		return s.respond(ctx, err)
	}

	paid := body.Paid != nil && *body.Paid
	cmd, err := commands.NewPlaceOrderCommand(session, body.Items, paid)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("items", err))
	}

	result, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.PlacedOrder{
		OrderId:       int64(result.OrderID),
		Total:         result.Total.String(),
		RejectedItems: result.RejectedItems,
	})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId, params servers.GetOrderParams) error {
	session, err := s.session(ctx, params.XUserLogin)
	if err != nil {
		return s.respond(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(session, order.ID(orderID))
	if err != nil {
		return s.fail(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := servers.Order{
		Id:        int64(detail.ID),
		Login:     detail.Login,
		Paid:      detail.Paid,
		Total:     detail.Total.String(),
		CreatedAt: detail.CreatedAt,
		Items:     make([]servers.OrderItem, len(detail.Items)),
	}
	for i, item := range detail.Items {
		response.Items[i] = servers.OrderItem{
			Id:          int64(item.ID),
			Name:        item.Name,
			Price:       item.Price.String(),
			Status:      servers.ItemStatus(item.Status.String()),
			LastUpdated: item.LastUpdated,
			Comments:    optional(item.Comments),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReplaceItem handles PUT /api/v1/orders/{orderId}/items/{itemName}.
func (s *Server) ReplaceItem(
	ctx echo.Context,
	orderID servers.OrderId,
	itemName servers.ItemName,
	params servers.ReplaceItemParams,
) error {
	var body servers.ReplaceItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	session, err := s.session(ctx, params.XUserLogin)
	if err != nil {
		return s.respond(ctx, err)
	}

	cmd, err := commands.NewReplaceItemCommand(session, order.ID(orderID), itemName, body.NewItemName)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.replaceItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ReplacedItem{
		ItemId: int64(result.ItemID),
		Total:  result.Total.String(),
	})
}

// AdvanceItemStatus handles POST /api/v1/orders/{orderId}/items/{itemName}/status.
func (s *Server) AdvanceItemStatus(
	ctx echo.Context,
	orderID servers.OrderId,
	itemName servers.ItemName,
	params servers.AdvanceItemStatusParams,
) error {
	var body servers.AdvanceItemStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	session, err := s.session(ctx, params.XUserLogin)
	if err != nil {
		return s.respond(ctx, err)
	}

	target, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	force := body.Force != nil && *body.Force
	cmd, err := commands.NewAdvanceItemStatusCommand(session, order.ID(orderID), itemName, target, force)
	if err != nil {
		return s.fail(ctx, err)
	}

	if _, err = s.advanceItemStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetPaidStatus handles PUT /api/v1/orders/{orderId}/paid.
func (s *Server) SetPaidStatus(ctx echo.Context, orderID servers.OrderId, params servers.SetPaidStatusParams) error {
	var body servers.SetPaidStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	session, err := s.session(ctx, params.XUserLogin)
	if err != nil {
		return s.respond(ctx, err)
	}

	cmd, err := commands.NewSetPaidStatusCommand(session, order.ID(orderID), body.Paid)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.setPaidStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRecentHistory handles GET /api/v1/history/recent.
func (s *Server) GetRecentHistory(ctx echo.Context, params servers.GetRecentHistoryParams) error {
	session, err := s.session(ctx, params.XUserLogin)
	if err != nil {
		return s.respond(ctx, err)
	}

	login := session.Login()
	if params.Login != nil {
		if login, err = kernel.NewLogin(*params.Login); err != nil {
			return s.fail(ctx, err)
		}
	}
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetRecentHistoryQuery(session, login, limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	entries, err := s.getRecentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toHistoryResponse(entries))
}

// GetWindowHistory handles GET /api/v1/history/window.
func (s *Server) GetWindowHistory(ctx echo.Context, params servers.GetWindowHistoryParams) error {
	session, err := s.session(ctx, params.XUserLogin)
	if err != nil {
		return s.respond(ctx, err)
	}

	var from, to time.Time
	if params.From != nil {
		from = *params.From
	}
	if params.To != nil {
		to = *params.To
	}

	query, err := queries.NewGetWindowHistoryQuery(session, from, to, s.now().UTC())
	if err != nil {
		return s.fail(ctx, err)
	}

	entries, err := s.getWindowHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toHistoryResponse(entries))
}

func toHistoryResponse(entries []queries.HistoryEntry) []servers.HistoryEntry {
	response := make([]servers.HistoryEntry, len(entries))
	for i, e := range entries {
		response[i] = servers.HistoryEntry{
			OrderId:     int64(e.OrderID),
			Login:       e.Login,
			Paid:        e.Paid,
			Total:       e.Total.String(),
			ItemId:      int64(e.ItemID),
			ItemName:    e.ItemName,
			Price:       e.Price.String(),
			Status:      servers.ItemStatus(e.Status.String()),
			LastUpdated: e.LastUpdated,
			Comments:    optional(e.Comments),
		}
	}
	return response
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
