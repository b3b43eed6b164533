package service

import (
	"github.com/google/wire"
)

// Wire 依賴提供：repo → store 介面的綁定也放這裡
var ProviderSet = wire.NewSet(
	ProvideShiftStore,
	ProvideClientStore,
	ProvideStaffMemberStore,
	ProvideClientTypeStore,
	ProvideOwnerStore,
	ProvideAuditLogStore,

	NewShiftService,
	NewClientService,
	NewStaffMemberService,
	NewClientTypeService,
	NewOwnerService,
	NewDashboardService,
	NewHealthService,
)
