package handler

import (
	"net/http"

	"workbench/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthStatus is the liveness probe body
type HealthStatus struct {
	Status string `json:"status"`
}

// HealthCheck reports that the process is serving requests
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, HealthStatus{Status: "ok"})
}
