package router

import (
	"github.com/zungle102/shiftrec-sub000/internal/handler"

	"github.com/gin-gonic/gin"
)

type ShiftRouter struct {
	handler *handler.ShiftHandler
}

func NewShiftRouter(
	handler *handler.ShiftHandler,
) *ShiftRouter {
	return &ShiftRouter{handler: handler}
}

// 這個方法讓你可以把 route group 掛在任何 group 下
func (sr *ShiftRouter) Register(group *gin.RouterGroup) {
	shifts := group.Group("/shifts")
	{
		shifts.GET("", sr.handler.List)
		shifts.POST("", sr.handler.Create)
		shifts.GET("/:shiftID", sr.handler.Get)
		shifts.PATCH("/:shiftID", sr.handler.Update)
		shifts.POST("/:shiftID/archive", sr.handler.Archive)
		shifts.POST("/:shiftID/restore", sr.handler.Restore)
		shifts.DELETE("/:shiftID", sr.handler.Delete)
	}
}
