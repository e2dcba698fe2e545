package web

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"thirdcoast.systems/fileprops/cmd/web/handlers/properties"
)

const streamPath = "/api/properties/stream"

type Webserver struct {
	*echo.Echo
	deps properties.Deps
}

func NewWebserver(ctx context.Context, deps properties.Deps) (*Webserver, error) {
	e := echo.New()

	webserver := &Webserver{
		Echo: e,
		deps: deps,
	}

	if err := webserver.setupMiddleware(); err != nil {
		return nil, err
	}

	if err := webserver.registerRoutes(); err != nil {
		return nil, err
	}

	return webserver, nil
}

func (s *Webserver) setupMiddleware() error {
	s.HideBanner = true
	s.HidePort = true
	s.Use(middleware.BodyLimit("2M"))
	s.Use(middleware.Recover())
	s.Use(middleware.RequestID())
	s.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, streamPath)
		},
	}))
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			switch c.Path() {
			case "/healthz", streamPath:
				return true
			default:
				return false
			}
		},
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
			}
			slog.Info("request", fields...)
			return nil
		},
	}))

	return nil
}

func (s *Webserver) registerRoutes() error {
	s.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	s.GET("/", func(c echo.Context) error {
		if c.QueryParam("path") == "" {
			return c.String(http.StatusOK, "usage: /properties?path=/absolute/file")
		}
		return c.Redirect(http.StatusFound, "/properties?"+c.QueryString())
	})
	s.GET("/properties", properties.HandlePage(s.deps))

	api := s.Group("/api")
	api.GET("/properties", properties.HandleJSON(s.deps))
	api.GET("/properties/stream", properties.HandleStream(s.deps))

	return nil
}
