package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"thirdcoast.systems/fileprops/cmd/web/handlers/properties"
	"thirdcoast.systems/fileprops/internal/config"
)

func newTestServer(t *testing.T) *Webserver {
	t.Helper()
	deps := properties.DefaultDeps()
	deps.LoadConfig = func(ctx context.Context) (*config.Config, error) {
		return &config.Config{Tools: config.ToolConfig{XDGMimePath: "xdg-mime", MediaInfoPath: "mediainfo"}}, nil
	}
	s, err := NewWebserver(context.Background(), deps)
	require.NoError(t, err)
	return s
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestRootRedirect(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?path=%2Ftmp%2Fa", nil))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/properties?path=%2Ftmp%2Fa", rec.Header().Get("Location"))
}

func TestPropertiesAPI_RealFile(t *testing.T) {
	s := newTestServer(t)

	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, 2000), 0o644))

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/properties?path="+path, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"label":"Size","value":"2.0 kB (2000 B)"`)
	require.Contains(t, rec.Body.String(), `"label":"Name","value":"data.bin"`)
}

func TestPropertiesAPI_Missing(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/properties?path="+filepath.Join(t.TempDir(), "gone"), nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
