package router

import (
	"github.com/zungle102/shiftrec-sub000/internal/handler"

	"github.com/gin-gonic/gin"
)

type StaffMemberRouter struct {
	handler *handler.StaffMemberHandler
}

func NewStaffMemberRouter(
	handler *handler.StaffMemberHandler,
) *StaffMemberRouter {
	return &StaffMemberRouter{handler: handler}
}

func (sr *StaffMemberRouter) Register(group *gin.RouterGroup) {
	staff := group.Group("/staff-members")
	{
		staff.GET("", sr.handler.List)
		staff.POST("", sr.handler.Create)
		staff.GET("/:staffMemberID", sr.handler.Get)
		staff.PATCH("/:staffMemberID", sr.handler.Update)
		staff.POST("/:staffMemberID/archive", sr.handler.Archive)
		staff.POST("/:staffMemberID/restore", sr.handler.Restore)
		staff.DELETE("/:staffMemberID", sr.handler.Delete)
	}
}
