package controller

import (
	"log/slog"
	"shiplyne/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, logger *slog.Logger) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	handler.Use(requestLogger(logger))

	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newDirectoryRoutesHandler(api, services, validate)
	newRouteRoutesHandler(api, services, validate)
	newBidRoutesHandler(api, services, validate)
	newShipmentRoutesHandler(api, services, validate)
	newDashboardRoutesHandler(api, services, validate)
}
