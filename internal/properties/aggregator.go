// Package properties gathers the attributes of a filesystem entry from its
// sources and merges them into one ordered row sequence.
package properties

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"thirdcoast.systems/fileprops/internal/config"
	"thirdcoast.systems/fileprops/pkg/fsstat"
	"thirdcoast.systems/fileprops/pkg/mediainfo"
	"thirdcoast.systems/fileprops/pkg/rows"
	"thirdcoast.systems/fileprops/pkg/utils/format"
	"thirdcoast.systems/fileprops/pkg/xdgmime"
)

// Source names used in outcomes, errors and logs.
const (
	SourceFilesystem = "filesystem"
	SourceMIME       = "mime"
	SourceMedia      = "mediainfo"
)

// Options select the optional sources and the timestamp format for one
// aggregation.
type Options struct {
	QueryMIME      bool
	QueryMediaInfo bool
	// DateTimeFormat is a dateformat-style mask; empty selects the locale
	// default.
	DateTimeFormat string
}

// OptionsFromConfig extracts the aggregation options from cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		QueryMIME:      cfg.QueryMIME,
		QueryMediaInfo: cfg.QueryMediaInfo,
		DateTimeFormat: cfg.DateTimeFormat,
	}
}

// StatFunc reads filesystem metadata.
type StatFunc func(path string) (fsstat.Info, error)

// MIMEQuerier reports a MIME type for a path.
type MIMEQuerier interface {
	Query(ctx context.Context, path string) (string, error)
}

// MediaInspector reports the media tracks of a path.
type MediaInspector interface {
	Inspect(ctx context.Context, path string) (*mediainfo.Report, error)
}

type Aggregator struct {
	Stat  StatFunc
	MIME  MIMEQuerier
	Media MediaInspector
}

// New wires an Aggregator to the real filesystem and external tools
// configured in cfg.
func New(cfg *config.Config) *Aggregator {
	mime := xdgmime.New()
	mime.Path = cfg.Tools.XDGMimePath
	mime.Timeout = cfg.Tools.ToolTimeout

	media := mediainfo.New()
	media.Path = cfg.Tools.MediaInfoPath
	media.Timeout = cfg.Tools.ToolTimeout

	return &Aggregator{
		Stat:  fsstat.Stat,
		MIME:  mime,
		Media: media,
	}
}

// Aggregate runs the filesystem source, then the MIME source and the media
// source when enabled, one after another, and concatenates their rows in
// that order. It fails only when the filesystem source fails; optional
// source failures are logged and contribute no rows.
func (a *Aggregator) Aggregate(ctx context.Context, path string, opts Options) ([]rows.Row, error) {
	id := uuid.NewString()
	log := slog.With("aggregation_id", id, "path", path)

	steps := []func() Outcome{
		func() Outcome { return a.filesystem(path, opts) },
	}
	if opts.QueryMIME && a.MIME != nil {
		steps = append(steps, func() Outcome { return a.mime(ctx, path) })
	}
	if opts.QueryMediaInfo && a.Media != nil {
		steps = append(steps, func() Outcome { return a.media(ctx, path) })
	}

	var out []rows.Row
	for _, step := range steps {
		o := step()
		if o.Err != nil {
			if !o.Optional {
				return nil, &SourceError{Source: o.Source, Path: path, Err: o.Err}
			}
			log.Warn("optional property source failed", "source", o.Source, "error", o.Err)
			continue
		}
		out = append(out, o.Rows...)
	}

	log.Debug("aggregated properties", "rows", len(out), "sources", len(steps))
	return out, nil
}

func (a *Aggregator) filesystem(path string, opts Options) Outcome {
	o := Outcome{Source: SourceFilesystem}

	stat := a.Stat
	if stat == nil {
		stat = fsstat.Stat
	}
	info, err := stat(path)
	if err != nil {
		o.Err = err
		return o
	}

	created := "unavailable"
	if info.HasBirth {
		created = format.DateTime(info.Birth, opts.DateTimeFormat)
	}

	o.Rows = []rows.Row{
		rows.Property("Name", filepath.Base(path), 0).WithHint(rows.HintCopy),
		rows.Property("Directory", filepath.Dir(path), 0).WithHint(rows.HintPath),
		rows.Property("Full Path", path, 0).WithHint(rows.HintFileLink),
		rows.Property("Size", format.FileSize(info.Size), 0),
		rows.Property("Created", created, 0),
		rows.Property("Changed", format.DateTime(info.Change, opts.DateTimeFormat), 0),
		rows.Property("Modified", format.DateTime(info.Modify, opts.DateTimeFormat), 0),
		rows.Property("Accessed", format.DateTime(info.Access, opts.DateTimeFormat), 0),
	}
	return o
}

func (a *Aggregator) mime(ctx context.Context, path string) Outcome {
	o := Outcome{Source: SourceMIME, Optional: true}

	mime, err := a.MIME.Query(ctx, path)
	if err != nil {
		o.Err = err
		return o
	}
	o.Rows = []rows.Row{rows.Property("MIME Type", mime, 0)}
	return o
}

func (a *Aggregator) media(ctx context.Context, path string) (o Outcome) {
	o = Outcome{Source: SourceMedia, Optional: true}

	// A panic while inspecting or flattening only costs this source's rows.
	defer func() {
		if r := recover(); r != nil {
			o.Rows = nil
			o.Err = fmt.Errorf("%w: %v", mediainfo.ErrMalformedMetadata, r)
		}
	}()

	report, err := a.Media.Inspect(ctx, path)
	if err != nil {
		o.Err = err
		return o
	}
	o.Rows = mediainfo.Flatten(report)
	return o
}
