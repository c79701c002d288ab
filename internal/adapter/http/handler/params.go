package handler

import (
	"gold-settlement/internal/adapter/http/middleware"
	"gold-settlement/pkg/apperror"
	"gold-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathID parses the :id path parameter, writing a VAL_001 response on failure.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// actor returns the authenticated admin, writing SEC_002 when absent.
func actor(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	return id, true
}
