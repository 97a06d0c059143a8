package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo"
)

/*
	Echo middleware to tag each request with a uuid, echoed back
	to the caller in the `X-Request-Id` response header
*/
func AttachRequestId(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// honour an id provided by an upstream proxy, if any
		requestId := c.Request().Header.Get("X-Request-Id")
		if requestId == "" {
			requestId = uuid.NewString()
		}

		c.Response().Header().Set("X-Request-Id", requestId)

		return next(c)
	}
}
