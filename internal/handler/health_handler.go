package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Hello is the root endpoint
func Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"service": "property-service",
		"message": "Property management API",
	})
}

// HealthCheck reports service liveness
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
	})
}
