// Package xdgmime queries a file's MIME type through the xdg-mime utility.
package xdgmime

import (
	"context"
	"errors"
	"strings"
	"time"

	"thirdcoast.systems/fileprops/pkg/toolexec"
)

// ErrEmptyOutput is returned when the tool succeeds but prints nothing.
var ErrEmptyOutput = errors.New("xdgmime: empty output")

type Client struct {
	// Path to the xdg-mime executable. Defaults to "xdg-mime" (PATH lookup).
	Path string

	// Timeout bounds a single invocation. Zero disables the bound.
	Timeout time.Duration

	execFn toolexec.Func
}

func New() *Client {
	return &Client{Path: "xdg-mime"}
}

func (c *Client) exec(ctx context.Context, args ...string) ([]byte, []byte, error) {
	name := c.Path
	if strings.TrimSpace(name) == "" {
		name = "xdg-mime"
	}

	ctx, cancel := toolexec.WithTimeout(ctx, c.Timeout)
	defer cancel()

	if c.execFn != nil {
		return c.execFn(ctx, name, args...)
	}
	return toolexec.Run(ctx, name, args...)
}

// Query returns the MIME type reported for path, e.g. "text/plain".
func (c *Client) Query(ctx context.Context, path string) (string, error) {
	stdout, _, err := c.exec(ctx, "query", "filetype", path)
	if err != nil {
		return "", err
	}

	mime := strings.TrimSpace(string(stdout))
	if mime == "" {
		return "", ErrEmptyOutput
	}
	// Only the first line is meaningful.
	if i := strings.IndexAny(mime, "\r\n"); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	return mime, nil
}
