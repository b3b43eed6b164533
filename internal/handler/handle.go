package handler

import (
	"github.com/zungle102/shiftrec-sub000/internal/core"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
)

// ProviderSet Provider对象集合
var ProviderSet = wire.NewSet(
	NewShiftHandler,
	NewClientHandler,
	NewStaffMemberHandler,
	NewClientTypeHandler,
	NewDashboardHandler,
	NewHealthHandler,
)

// ownerEmail 由 session middleware 驗證後放進 context
func ownerEmail(c *gin.Context) string {
	if v, ok := c.Get(core.ContextOwnerEmailKey); ok {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}
