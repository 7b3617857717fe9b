package rest

import (
	"errors"
	"net/http"

	"smartMenu/domain"
	jsonres "smartMenu/pkg/response"

	"github.com/labstack/echo/v4"
)

// writeError maps the domain error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is a persistence/server failure.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return c.JSON(http.StatusBadRequest, jsonres.Error(
			jsonres.CodeInvalidRequest, err.Error(), nil,
		))
	case errors.Is(err, domain.ErrTenantExists), errors.Is(err, domain.ErrArmExists):
		// Duplicates surface as 400 like every other caller-correctable error.
		return c.JSON(http.StatusBadRequest, jsonres.Error(
			jsonres.CodeConflict, err.Error(), nil,
		))
	case errors.Is(err, domain.ErrTenantNotFound),
		errors.Is(err, domain.ErrNoArms),
		errors.Is(err, domain.ErrStatsNotFound):
		return c.JSON(http.StatusNotFound, jsonres.Error(
			jsonres.CodeNotFound, err.Error(), nil,
		))
	default:
		return c.JSON(http.StatusInternalServerError, jsonres.Error(
			jsonres.CodePersistenceError, err.Error(), nil,
		))
	}
}
