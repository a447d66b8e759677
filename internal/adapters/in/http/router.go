package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"cafe/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// NewRouter builds the echo instance serving the API, the health probe and
// the Swagger UI. API requests are validated against the OpenAPI document
// before they reach the server.
func NewRouter(server servers.ServerInterface, logger *slog.Logger) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(swagger); err != nil {
		return nil, err
	}

	validator, err := requestValidator(swagger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler
	e.Use(
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}),
		middleware.Recover(),
		requestLogger(logger),
		validator,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}

// errorHandler renders errors that escaped the server, such as unknown
// routes and parameters the wrapper could not bind, in the API error format.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	}
	_ = c.JSON(code, servers.Error{Code: code, Message: message})
}

// requestValidator rejects requests that do not match the document with
// 400 before any handler runs. Routes outside the document pass through.
func requestValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	// Match on paths only; the server is reachable under any host.
	swagger.Servers = nil
	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("failed to build OpenAPI router: %w", err)
	}

	options := &openapi3filter.Options{MultiError: false}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return badRequest(c, validationMessage(err))
			}
			return next(c)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return err.Error()
	}

	reason := reqErr.Reason
	if reqErr.Err != nil {
		reason = reqErr.Err.Error()
	}
	switch {
	case reqErr.Parameter != nil:
		return fmt.Sprintf("invalid parameter %s: %s", reqErr.Parameter.Name, reason)
	case reqErr.RequestBody != nil:
		return "invalid request body: " + reason
	default:
		return reqErr.Error()
	}
}

type openAPIDoc struct {
	doc string
}

func (d openAPIDoc) ReadDoc() string {
	return d.doc
}

var registerDocOnce sync.Once

// registerSwaggerDoc hands the document to swag so /swagger/doc.json serves it.
func registerSwaggerDoc(swagger *openapi3.T) error {
	doc, err := swagger.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode OpenAPI document: %w", err)
	}
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{doc: string(doc)})
	})
	return nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), logLevelFor(v.Status), "request", attrs...)
			return nil
		},
	})
}
