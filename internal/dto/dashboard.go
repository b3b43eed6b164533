package dto

// DashboardSummaryDto 首頁儀表板的彙總數字（唯讀）
type DashboardSummaryDto struct {
	ShiftsByStatus   map[string]int64 `json:"shiftsByStatus"`
	TotalShifts      int64            `json:"totalShifts"`
	TotalClients     int64            `json:"totalClients"`
	TotalStaff       int64            `json:"totalStaff"`
	UpcomingShifts   int64            `json:"upcomingShifts"`   // 今天（含）之後的未封存班表
	UnassignedShifts int64            `json:"unassignedShifts"` // 尚未指派員工
}
