package router

import (
	"github.com/zungle102/shiftrec-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
)

// ApiRouter 掛載 /api/v1 底下所有需要 session 驗證的業務路由
type ApiRouter struct {
	session           *middleware.Session
	rateLimit         *middleware.RateLimit
	shiftRouter       *ShiftRouter
	clientRouter      *ClientRouter
	staffMemberRouter *StaffMemberRouter
	clientTypeRouter  *ClientTypeRouter
	dashboardRouter   *DashboardRouter
}

func NewApiRouter(
	session *middleware.Session,
	rateLimit *middleware.RateLimit,
	shiftRouter *ShiftRouter,
	clientRouter *ClientRouter,
	staffMemberRouter *StaffMemberRouter,
	clientTypeRouter *ClientTypeRouter,
	dashboardRouter *DashboardRouter,
) *ApiRouter {
	return &ApiRouter{
		session:           session,
		rateLimit:         rateLimit,
		shiftRouter:       shiftRouter,
		clientRouter:      clientRouter,
		staffMemberRouter: staffMemberRouter,
		clientTypeRouter:  clientTypeRouter,
		dashboardRouter:   dashboardRouter,
	}
}

func (ar *ApiRouter) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	api.Use(ar.session.Handler())
	api.Use(ar.rateLimit.Guard())
	{
		ar.shiftRouter.Register(api)
		ar.clientRouter.Register(api)
		ar.staffMemberRouter.Register(api)
		ar.clientTypeRouter.Register(api)
		ar.dashboardRouter.Register(api)
	}
}
