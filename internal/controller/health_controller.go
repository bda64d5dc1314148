package controller

import (
	"context"
	"net/http"

	"github.com/alimikegami/point-of-sales/gaming-store-service/pkg/response"
	"github.com/labstack/echo/v4"
)

const MessageRoot = "Gaming Store API"

// ReadinessProbe returns nil once the service can take traffic.
type ReadinessProbe func(ctx context.Context) error

type HealthController struct {
	ready ReadinessProbe
}

func CreateHealthController(e *echo.Echo, ready ReadinessProbe) {
	c := HealthController{
		ready: ready,
	}
	e.GET("/", c.Root)
	e.GET("/health/live", c.Live)
	e.GET("/health/ready", c.Ready)
}

func (c *HealthController) Root(e echo.Context) error {
	return response.WriteMessageResponse(e, MessageRoot)
}

func (c *HealthController) Live(e echo.Context) error {
	return e.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (c *HealthController) Ready(e echo.Context) error {
	if err := c.ready(e.Request().Context()); err != nil {
		return e.JSON(http.StatusServiceUnavailable, response.ErrorResponse{
			Status:  "error",
			Message: "not ready",
			Detail:  err.Error(),
		})
	}

	return e.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
