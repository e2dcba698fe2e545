package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Success_Defaults(t *testing.T) {
	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Equal(t, 8080, cfg.WebServerPort)
	require.False(t, cfg.QueryMIME)
	require.False(t, cfg.QueryMediaInfo)
	require.Empty(t, cfg.DateTimeFormat)
	require.Equal(t, "xdg-mime", cfg.Tools.XDGMimePath)
	require.Equal(t, "mediainfo", cfg.Tools.MediaInfoPath)
	require.Equal(t, 10*time.Second, cfg.Tools.ToolTimeout)
	require.Equal(t, 2*time.Second, cfg.PollInterval)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("QUERY_MIME", "true")
	t.Setenv("QUERY_MEDIAINFO", "1")
	t.Setenv("DATETIME_FORMAT", "yyyy-mm-dd")
	t.Setenv("MEDIAINFO_PATH", "/opt/bin/mediainfo")
	t.Setenv("TOOL_TIMEOUT", "3s")

	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)
	require.True(t, cfg.QueryMIME)
	require.True(t, cfg.QueryMediaInfo)
	require.Equal(t, "yyyy-mm-dd", cfg.DateTimeFormat)
	require.Equal(t, "/opt/bin/mediainfo", cfg.Tools.MediaInfoPath)
	require.Equal(t, 3*time.Second, cfg.Tools.ToolTimeout)
}

func TestLoadConfig_ValidationError(t *testing.T) {
	t.Setenv("WEBSERVER_PORT", "70000")

	cfg, err := LoadConfig(context.Background())
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fileprops.yaml")
	require.NoError(t, os.WriteFile(path, []byte("query_mime: true\ndatetime_format: \"HH:MM\"\n"), 0o644))
	t.Setenv("FILEPROPS_CONFIG", path)

	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)
	require.True(t, cfg.QueryMIME)
	require.Equal(t, "HH:MM", cfg.DateTimeFormat)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Setenv("FILEPROPS_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := LoadConfig(context.Background())
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("QUERY_MIME", "false")

	v := viper.New()
	v.Set("QUERY_MIME", true)
	v.Set("DATETIME_FORMAT", "HH:MM")

	cfg, err := Load(context.Background(), v)
	require.NoError(t, err)
	require.True(t, cfg.QueryMIME)
	require.Equal(t, "HH:MM", cfg.DateTimeFormat)
}

func TestLoadConfig_Concurrent(t *testing.T) {
	t.Setenv("QUERY_MEDIAINFO", "true")

	var wg sync.WaitGroup
	errs := make(chan error, 8*5)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				cfg, err := LoadConfig(context.Background())
				if err == nil && !cfg.QueryMediaInfo {
					err = fmt.Errorf("QUERY_MEDIAINFO not applied")
				}
				if err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}
