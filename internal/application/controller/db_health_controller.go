package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"go-web/internal/domain/model"
	"go-web/internal/domain/usecase/health"
)

type DBHealthController struct {
	api     *echo.Group
	useCase health.UseCase
}

func NewDBHealthController(api *echo.Group, useCase health.UseCase) *DBHealthController {
	return &DBHealthController{api: api, useCase: useCase}
}

// InitDBHealthRoutes initializes database health check routes
func (controller *DBHealthController) InitDBHealthRoutes() {
	controller.api.GET("/db/health", controller.CheckDatabase)
}

// CheckDatabase godoc
// @Summary Database connectivity check
// @Description Runs a single SELECT 1 against the database
// @Tags health
// @Produce json
// @Success 200 {object} model.DBHealthResponse "Database reachable"
// @Failure 500 {object} model.DBHealthResponse "Database unreachable"
// @Router /db/health [get]
func (controller *DBHealthController) CheckDatabase(c echo.Context) error {
	result := controller.useCase.ProbeDatabase(c.Request().Context())

	status := http.StatusOK
	if !result.OK() {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, model.NewDBHealthResponse(result))
}
