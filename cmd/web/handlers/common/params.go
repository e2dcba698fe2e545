package common

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// RequirePathParam extracts the absolute filesystem path from the "path"
// query parameter or returns a 400 error.
func RequirePathParam(c echo.Context) (string, error) {
	p := c.QueryParam("path")
	if strings.TrimSpace(p) == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "path is required")
	}
	if err := validate.Var(p, "filepath"); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid path")
	}
	if !filepath.IsAbs(p) {
		return "", echo.NewHTTPError(http.StatusBadRequest, "path must be absolute")
	}
	return filepath.Clean(p), nil
}
