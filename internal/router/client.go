package router

import (
	"github.com/zungle102/shiftrec-sub000/internal/handler"

	"github.com/gin-gonic/gin"
)

type ClientRouter struct {
	handler *handler.ClientHandler
}

func NewClientRouter(
	handler *handler.ClientHandler,
) *ClientRouter {
	return &ClientRouter{handler: handler}
}

func (cr *ClientRouter) Register(group *gin.RouterGroup) {
	clients := group.Group("/clients")
	{
		clients.GET("", cr.handler.List)
		clients.POST("", cr.handler.Create)
		clients.GET("/:clientID", cr.handler.Get)
		clients.PATCH("/:clientID", cr.handler.Update)
		clients.POST("/:clientID/archive", cr.handler.Archive)
		clients.POST("/:clientID/restore", cr.handler.Restore)
		clients.DELETE("/:clientID", cr.handler.Delete)
	}
}
