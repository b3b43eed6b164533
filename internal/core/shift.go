package core

// ShiftStatus 班表狀態
// 這是業務欄位而不是嚴格的狀態機：任何值之間都允許切換，
// service 只負責在狀態改變時蓋上對應的時間戳。
type ShiftStatus string

const (
	ShiftStatusDrafted            ShiftStatus = "Drafted"
	ShiftStatusPublished          ShiftStatus = "Published"
	ShiftStatusAssigned           ShiftStatus = "Assigned"
	ShiftStatusConfirmed          ShiftStatus = "Confirmed"
	ShiftStatusDeclined           ShiftStatus = "Declined"
	ShiftStatusInProgress         ShiftStatus = "In Progress"
	ShiftStatusCompleted          ShiftStatus = "Completed"
	ShiftStatusMissed             ShiftStatus = "Missed"
	ShiftStatusCanceled           ShiftStatus = "Canceled"
	ShiftStatusTimesheetSubmitted ShiftStatus = "Timesheet Submitted"
	ShiftStatusApproved           ShiftStatus = "Approved"
)

// ShiftStatuses 全部合法狀態
var ShiftStatuses = []ShiftStatus{
	ShiftStatusDrafted,
	ShiftStatusPublished,
	ShiftStatusAssigned,
	ShiftStatusConfirmed,
	ShiftStatusDeclined,
	ShiftStatusInProgress,
	ShiftStatusCompleted,
	ShiftStatusMissed,
	ShiftStatusCanceled,
	ShiftStatusTimesheetSubmitted,
	ShiftStatusApproved,
}

// ShiftStatusPendingAlias 舊版前端送的 Published 別名，只在輸入端接受
const ShiftStatusPendingAlias = "Pending"

// NormalizeShiftStatus 轉換輸入字串為合法狀態（含 Pending 別名）
func NormalizeShiftStatus(raw string) (ShiftStatus, bool) {
	if raw == ShiftStatusPendingAlias {
		return ShiftStatusPublished, true
	}
	for _, status := range ShiftStatuses {
		if string(status) == raw {
			return status, true
		}
	}
	return "", false
}

// ShiftStatusTimestampFields 狀態 → 進入該狀態時要蓋的文件欄位。
// Drafted 沒有對應欄位（建立時間由 createdAt 表達）。
var ShiftStatusTimestampFields = map[ShiftStatus]string{
	ShiftStatusPublished:          "publishedAt",
	ShiftStatusAssigned:           "assignedAt",
	ShiftStatusConfirmed:          "confirmedAt",
	ShiftStatusDeclined:           "declinedAt",
	ShiftStatusInProgress:         "inProgressAt",
	ShiftStatusCompleted:          "completedAt",
	ShiftStatusMissed:             "missedAt",
	ShiftStatusCanceled:           "canceledAt",
	ShiftStatusTimesheetSubmitted: "timesheetSubmittedAt",
	ShiftStatusApproved:           "approvedAt",
}
