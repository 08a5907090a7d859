package site

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"go-web/pkg/log"
	"go-web/pkg/msg"
)

// Route maps a URL path to the view rendered into the layout's root element
type Route struct {
	Path  string
	View  string
	Title string
}

// Routes is the site's route table. Paths outside it fall through to the 404 handler.
var Routes = []Route{
	{Path: "/", View: "app", Title: "Home"},
	{Path: "/nested", View: "nested", Title: "Nested"},
}

// Page is the data every view is rendered with
type Page struct {
	Title   string
	Path    string
	Routes  []Route
	Version string
}

type Router struct {
	routes  []Route
	version string
}

func NewRouter(routes []Route, version string) *Router {
	return &Router{routes: routes, version: version}
}

// Mount installs the renderer, the asset handler and one GET handler per route.
func (router *Router) Mount(e *echo.Echo) error {
	views := make([]string, 0, len(router.routes))
	for _, route := range router.routes {
		views = append(views, route.View)
	}

	renderer, err := NewRenderer(views...)
	if err != nil {
		return err
	}
	e.Renderer = renderer

	e.StaticFS(assetsPrefix, echo.MustSubFS(assetsFS, "assets"))

	for _, route := range router.routes {
		e.GET(route.Path, router.render(route))
	}
	return nil
}

func (router *Router) render(route Route) echo.HandlerFunc {
	return func(c echo.Context) error {
		page := Page{
			Title:   route.Title,
			Path:    route.Path,
			Routes:  router.routes,
			Version: router.version,
		}

		if err := c.Render(http.StatusOK, route.View, page); err != nil {
			log.Error(msg.GetMessage("site.render-fail", route.View, err), zap.Error(err))
			return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
		}
		return nil
	}
}
