package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
)

func actorFrom(c *gin.Context) domain.Actor {
	return domain.Actor{
		ID:   c.GetString(middleware.ContextUserID),
		Role: domain.Role(c.GetString(middleware.ContextUserRole)),
	}
}

func userID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}
