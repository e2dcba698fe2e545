// package properties serves the property view of a single file.
package properties

import (
	"context"
	"log/slog"

	"thirdcoast.systems/fileprops/internal/config"
	props "thirdcoast.systems/fileprops/internal/properties"
	"thirdcoast.systems/fileprops/pkg/fsstat"
	"thirdcoast.systems/fileprops/pkg/rows"
)

// Aggregator produces the row sequence for a path.
type Aggregator interface {
	Aggregate(ctx context.Context, path string, opts props.Options) ([]rows.Row, error)
}

// Deps are the collaborators of the property handlers. Configuration is
// loaded on every request so edits apply without a restart.
type Deps struct {
	LoadConfig    func(ctx context.Context) (*config.Config, error)
	NewAggregator func(cfg *config.Config) Aggregator
	Stat          func(path string) (fsstat.Info, error)
}

// DefaultDeps wires the handlers to the environment configuration, the real
// aggregator and the filesystem.
func DefaultDeps() Deps {
	return Deps{
		LoadConfig: config.LoadConfig,
		NewAggregator: func(cfg *config.Config) Aggregator {
			return props.New(cfg)
		},
		Stat: fsstat.Stat,
	}
}

// aggregate loads the configuration and runs one aggregation.
func (d Deps) aggregate(ctx context.Context, path string) ([]rows.Row, *config.Config, error) {
	cfg, err := d.LoadConfig(ctx)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return nil, nil, err
	}
	seq, err := d.NewAggregator(cfg).Aggregate(ctx, path, props.OptionsFromConfig(cfg))
	if err != nil {
		return nil, cfg, err
	}
	return seq, cfg, nil
}
