package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/joveey/sistem-bk-online/entity"
)

// PrincipalFrom reads the principal stored by the auth middleware.
func PrincipalFrom(c *gin.Context) (entity.Principal, bool) {
	v, ok := c.Get("principal")
	if !ok {
		return entity.Principal{}, false
	}
	p, ok := v.(entity.Principal)
	return p, ok
}
