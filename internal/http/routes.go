package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup defines a group of routes that can be registered on the
// API router group.
type PublicRouteGroup interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}
