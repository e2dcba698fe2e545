package properties

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
	"thirdcoast.systems/fileprops/cmd/web/handlers/common"
	"thirdcoast.systems/fileprops/internal/config"
	props "thirdcoast.systems/fileprops/internal/properties"
	"thirdcoast.systems/fileprops/internal/view"
)

const defaultPollInterval = 2 * time.Second

// snapshot captures what triggers a re-aggregation: the file being saved
// or the configuration changing.
type snapshot struct {
	size    int64
	modTime time.Time
	missing bool
	opts    props.Options
}

// HandleStream keeps the property table of ?path= current over SSE. It
// patches the table once, then re-aggregates whenever the file or the
// configuration changes. Each patch replaces the previous table.
func HandleStream(d Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		path, err := common.RequirePathParam(c)
		if err != nil {
			return err
		}

		ctx := c.Request().Context()
		common.SetSSEHeaders(c)
		sse := datastar.NewSSE(c.Response().Writer, c.Request())

		last, interval, err := d.patch(ctx, sse, path)
		if err != nil {
			return nil
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}

			cfg, err := d.LoadConfig(ctx)
			if err != nil {
				slog.Warn("failed to reload config", "error", err)
				continue
			}
			if d.observe(path, cfg) == last {
				continue
			}

			var next time.Duration
			last, next, err = d.patch(ctx, sse, path)
			if err != nil {
				return nil
			}
			if next != interval {
				interval = next
				ticker.Reset(interval)
			}
		}
	}
}

// patch aggregates path and sends the table. The returned error is only set
// when the client is gone.
func (d Deps) patch(ctx context.Context, sse *datastar.ServerSentEventGenerator, path string) (snapshot, time.Duration, error) {
	seq, cfg, aggErr := d.aggregate(ctx, path)

	var snap snapshot
	interval := defaultPollInterval
	if cfg != nil {
		snap = d.observe(path, cfg)
		if cfg.PollInterval > 0 {
			interval = cfg.PollInterval
		}
	}

	component := view.Table(seq)
	if aggErr != nil {
		slog.Warn("live aggregation failed", "path", path, "error", aggErr)
		component = view.ErrorTable(common.ErrFromStat(aggErr).Message.(string))
	}

	if err := sse.PatchElementTempl(component, datastar.WithSelectorID(view.TableID)); err != nil {
		return snap, interval, err
	}
	return snap, interval, nil
}

func (d Deps) observe(path string, cfg *config.Config) snapshot {
	snap := snapshot{opts: props.OptionsFromConfig(cfg)}
	info, err := d.Stat(path)
	if err != nil {
		snap.missing = true
		return snap
	}
	snap.size = info.Size
	snap.modTime = info.Modify
	return snap
}
