package router

import (
	"github.com/zungle102/shiftrec-sub000/internal/handler"

	"github.com/gin-gonic/gin"
)

type ClientTypeRouter struct {
	handler *handler.ClientTypeHandler
}

func NewClientTypeRouter(
	handler *handler.ClientTypeHandler,
) *ClientTypeRouter {
	return &ClientTypeRouter{handler: handler}
}

func (cr *ClientTypeRouter) Register(group *gin.RouterGroup) {
	clientTypes := group.Group("/client-types")
	{
		clientTypes.GET("", cr.handler.List)
		clientTypes.POST("", cr.handler.Create)
	}
}
