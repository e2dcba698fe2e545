package mediainfo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"thirdcoast.systems/fileprops/pkg/toolexec"
)

type Client struct {
	// Path to the mediainfo executable. Defaults to "mediainfo" (PATH lookup).
	Path string

	// Timeout bounds a single invocation. Zero disables the bound.
	Timeout time.Duration

	execFn toolexec.Func
}

func New() *Client {
	return &Client{Path: "mediainfo"}
}

func (c *Client) exec(ctx context.Context, args ...string) ([]byte, []byte, error) {
	name := c.Path
	if strings.TrimSpace(name) == "" {
		name = "mediainfo"
	}

	ctx, cancel := toolexec.WithTimeout(ctx, c.Timeout)
	defer cancel()

	if c.execFn != nil {
		return c.execFn(ctx, name, args...)
	}
	return toolexec.Run(ctx, name, args...)
}

// Inspect runs mediainfo against path and parses its XML report.
func (c *Client) Inspect(ctx context.Context, path string) (*Report, error) {
	stdout, _, err := c.exec(ctx, "--Output=XML", path)
	if err != nil {
		return nil, err
	}

	report, err := Parse(stdout)
	if err != nil {
		return nil, fmt.Errorf("parse mediainfo output for %s: %w", path, err)
	}
	return report, nil
}

// Version returns the library version line of `mediainfo --Version`.
func (c *Client) Version(ctx context.Context) (string, error) {
	stdout, _, err := c.exec(ctx, "--Version")
	if err != nil {
		return "", err
	}
	lines := strings.Split(strings.TrimSpace(string(stdout)), "\n")
	return strings.TrimSpace(lines[len(lines)-1]), nil
}
