package properties

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/fileprops/cmd/web/handlers/common"
	props "thirdcoast.systems/fileprops/internal/properties"
	"thirdcoast.systems/fileprops/internal/view"
	"thirdcoast.systems/fileprops/pkg/rows"
)

// HandlePage renders the full property page for ?path=.
func HandlePage(d Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		path, err := common.RequirePathParam(c)
		if err != nil {
			return err
		}

		ctx := c.Request().Context()
		seq, cfg, err := d.aggregate(ctx, path)
		if err != nil {
			return aggregateError(err, path)
		}

		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		return view.Page(view.PageData{
			Path:      path,
			Style:     view.LoadStyle(cfg.OutputStylePath),
			Rows:      seq,
			StreamURL: view.StreamURL(path),
		}).Render(ctx, c.Response().Writer)
	}
}

// HandleJSON returns the row sequence for ?path= as JSON.
func HandleJSON(d Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		path, err := common.RequirePathParam(c)
		if err != nil {
			return err
		}

		seq, _, err := d.aggregate(c.Request().Context(), path)
		if err != nil {
			return aggregateError(err, path)
		}
		if seq == nil {
			seq = []rows.Row{}
		}
		return c.JSON(http.StatusOK, seq)
	}
}

func aggregateError(err error, path string) error {
	var se *props.SourceError
	if errors.As(err, &se) {
		slog.Warn("failed to stat file", "path", path, "error", err)
		return common.ErrFromStat(err)
	}
	slog.Error("failed to aggregate properties", "path", path, "error", err)
	return common.ErrInternal("failed to load properties")
}
