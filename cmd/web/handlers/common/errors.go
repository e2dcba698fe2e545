package common

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrBadRequest returns a 400 Bad Request error.
func ErrBadRequest(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, msg)
}

// ErrNotFound returns a 404 Not Found error.
func ErrNotFound(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound, msg)
}

// ErrForbidden returns a 403 Forbidden error.
func ErrForbidden(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusForbidden, msg)
}

// ErrInternal returns a 500 Internal Server Error.
func ErrInternal(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError, msg)
}

// ErrFromStat maps a failed filesystem read to an HTTP error.
func ErrFromStat(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound("file not found")
	case errors.Is(err, fs.ErrPermission):
		return ErrForbidden("permission denied")
	default:
		return ErrInternal("failed to read file properties")
	}
}
