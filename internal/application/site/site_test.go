package site

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSite(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	require.NoError(t, NewRouter(Routes, "test").Mount(e))
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRoutesRenderTheirView(t *testing.T) {
	e := newSite(t)

	tests := []struct {
		path  string
		view  string
		other string
	}{
		{path: "/", view: `data-view="app"`, other: `data-view="nested"`},
		{path: "/nested", view: `data-view="nested"`, other: `data-view="app"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(e, tt.path)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
			assert.Contains(t, rec.Body.String(), `<div id="root">`)
			assert.Contains(t, rec.Body.String(), tt.view)
			assert.NotContains(t, rec.Body.String(), tt.other)
		})
	}
}

func TestUnknownPathRendersNoView(t *testing.T) {
	rec := get(newSite(t), "/elsewhere")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "data-view")
}

func TestAssetsAreServed(t *testing.T) {
	e := newSite(t)

	for _, name := range []string{"styles.css", "index.css"} {
		rec := get(e, "/assets/"+name)
		assert.Equal(t, http.StatusOK, rec.Code, name)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/css", name)
	}
}

func TestNewRendererUnknownView(t *testing.T) {
	_, err := NewRenderer("missing")
	assert.Error(t, err)
}

func TestRenderUnregisteredView(t *testing.T) {
	renderer, err := NewRenderer("app")
	require.NoError(t, err)

	err = renderer.Render(httptest.NewRecorder(), "nested", Page{}, nil)
	assert.EqualError(t, err, "view nested is not registered")
}
