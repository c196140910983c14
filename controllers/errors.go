package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/joveey/sistem-bk-online/pkg/resp"
	"github.com/joveey/sistem-bk-online/services"
)

// writeServiceError maps service sentinels onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, "invalid state transition")
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, "invalid credentials")
	case errors.Is(err, services.ErrUniqueCodeTaken):
		resp.ValidationError(c, map[string][]string{
			"unique_code": {"unique_code has already been taken"},
		})
	default:
		resp.ServerError(c, err)
	}
}
