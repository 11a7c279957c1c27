package http

import (
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

func respond(ctx echo.Context, status int, message string, data any) error {
	return ctx.JSON(status, servers.Envelope{Success: true, Message: message, Data: data})
}

func respondPage(ctx echo.Context, status int, message string, data any, meta *servers.PageMeta) error {
	return ctx.JSON(status, servers.Envelope{Success: true, Message: message, Data: data, Meta: meta})
}
