package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"ensgraph/internal/ens"
	"ensgraph/internal/logger"
	"ensgraph/internal/store"
)

// mapError translates domain errors into a status code and the detail
// message exposed to clients. Storage failures get a generic detail so
// driver internals never leak.
func mapError(err error) (int, string) {
	var invalidErr *ens.InvalidNameError
	var selfErr *ens.SelfRelationshipError
	var dupErr *store.DuplicateRelationshipError
	var unavailErr *store.UnavailableError

	switch {
	case errors.As(err, &invalidErr), errors.Is(err, store.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &selfErr):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &dupErr):
		return http.StatusConflict, err.Error()
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.As(err, &unavailErr):
		return http.StatusInternalServerError, "database connection error"
	}
	return http.StatusInternalServerError, "internal server error"
}

// errorHandler renders every error as {"detail": msg}, the shape
// existing consumers of this API expect.
func errorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, detail := mapError(err)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				detail = msg
			}
		}

		if status >= http.StatusInternalServerError {
			log.Error("request error",
				slog.Int("status", status),
				logger.Error(err),
			)
		}

		if c.Request().Method == http.MethodHead {
			c.NoContent(status)
			return
		}
		c.JSON(status, map[string]string{"detail": detail})
	}
}
