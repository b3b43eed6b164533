package dto

import (
	"github.com/zungle102/shiftrec-sub000/internal/core"
)

// 建立班表
type CreateShiftDto struct {
	ServiceDate string `json:"serviceDate" binding:"required"` // YYYY-MM-DD
	StartTime   string `json:"startTime" binding:"required"`   // HH:mm
	EndTime     string `json:"endTime" binding:"required"`
	BreakDuration *int   `json:"breakDuration,omitempty" binding:"omitempty,gte=0"` // 分鐘，預設 0
	ServiceType   string `json:"serviceType,omitempty" binding:"omitempty,max=120"`

	ClientID   string `json:"clientId" binding:"required"` // 新班表一律必填
	ClientName string `json:"clientName,omitempty" binding:"omitempty,max=200"`

	StaffMemberID          string   `json:"staffMemberId,omitempty"`
	NotifiedStaffMemberIDs []string `json:"notifiedStaffMemberIds,omitempty"`

	// 舊欄位名，Normalize 時映射到新欄位
	TeamMemberID          string   `json:"teamMemberId,omitempty"`
	NotifiedTeamMemberIDs []string `json:"notifiedTeamMemberIds,omitempty"`

	Status string `json:"status,omitempty"`
	Note   string `json:"note,omitempty" binding:"omitempty,max=2000"`
}

// Normalize 舊欄位名映射：純粹的輸入正規化，在任何驗證之前執行一次。
// 舊欄位只在新欄位缺漏時生效（新欄位永遠優先）。
func (dto *CreateShiftDto) Normalize() {
	if dto.StaffMemberID == "" && dto.TeamMemberID != "" {
		dto.StaffMemberID = dto.TeamMemberID
	}
	if dto.NotifiedStaffMemberIDs == nil && dto.NotifiedTeamMemberIDs != nil {
		dto.NotifiedStaffMemberIDs = dto.NotifiedTeamMemberIDs
	}
}

// 更新班表（merge-patch：沒給的欄位維持原值）
type UpdateShiftDto struct {
	ServiceDate   *string `json:"serviceDate,omitempty"`
	StartTime     *string `json:"startTime,omitempty"`
	EndTime       *string `json:"endTime,omitempty"`
	BreakDuration *int    `json:"breakDuration,omitempty" binding:"omitempty,gte=0"`
	ServiceType   *string `json:"serviceType,omitempty" binding:"omitempty,max=120"`

	ClientID   *string `json:"clientId,omitempty"`
	ClientName *string `json:"clientName,omitempty" binding:"omitempty,max=200"`

	StaffMemberID          *string   `json:"staffMemberId,omitempty"`
	NotifiedStaffMemberIDs *[]string `json:"notifiedStaffMemberIds,omitempty"`

	TeamMemberID          *string   `json:"teamMemberId,omitempty"`
	NotifiedTeamMemberIDs *[]string `json:"notifiedTeamMemberIds,omitempty"`

	Status *string `json:"status,omitempty"`
	Note   *string `json:"note,omitempty" binding:"omitempty,max=2000"`
}

func (dto *UpdateShiftDto) Normalize() {
	if dto.StaffMemberID == nil && dto.TeamMemberID != nil {
		dto.StaffMemberID = dto.TeamMemberID
	}
	if dto.NotifiedStaffMemberIDs == nil && dto.NotifiedTeamMemberIDs != nil {
		dto.NotifiedStaffMemberIDs = dto.NotifiedTeamMemberIDs
	}
}

// ShiftResponseDto 反正規化後的班表視圖：
// 顯示欄位每次讀取都由參照文件重算，不信任班表上的殘留複本。
type ShiftResponseDto struct {
	ID         string `json:"id"`
	OwnerEmail string `json:"ownerEmail"`

	ServiceDate   string `json:"serviceDate"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	BreakDuration int    `json:"breakDuration"`
	ServiceType   string `json:"serviceType,omitempty"`

	ClientID       string `json:"clientId,omitempty"`
	ClientName     string `json:"clientName,omitempty"`
	ClientAddress  string `json:"clientAddress,omitempty"`
	ClientSuburb   string `json:"clientSuburb,omitempty"`
	ClientTypeID   string `json:"clientTypeId,omitempty"`
	ClientTypeName string `json:"clientTypeName,omitempty"`
	ClientPhone    string `json:"clientPhone,omitempty"`

	StaffMemberID          string   `json:"staffMemberId,omitempty"`
	StaffMemberName        string   `json:"staffMemberName,omitempty"`
	NotifiedStaffMemberIDs []string `json:"notifiedStaffMemberIds,omitempty"`
	StaffMemberNames       []string `json:"staffMemberNames,omitempty"` // 對應 notified 清單，查無者靜默略過

	Status core.ShiftStatus `json:"status"`
	Note   string           `json:"note,omitempty"`

	Archived   bool   `json:"archived"`
	ArchivedAt string `json:"archivedAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`

	PublishedAt          string `json:"publishedAt,omitempty"`
	AssignedAt           string `json:"assignedAt,omitempty"`
	ConfirmedAt          string `json:"confirmedAt,omitempty"`
	DeclinedAt           string `json:"declinedAt,omitempty"`
	InProgressAt         string `json:"inProgressAt,omitempty"`
	CompletedAt          string `json:"completedAt,omitempty"`
	MissedAt             string `json:"missedAt,omitempty"`
	CanceledAt           string `json:"canceledAt,omitempty"`
	TimesheetSubmittedAt string `json:"timesheetSubmittedAt,omitempty"`
	ApprovedAt           string `json:"approvedAt,omitempty"`
}

// ShiftListResponseDto 列表包一層分頁資訊
type ShiftListResponseDto struct {
	Shifts []*ShiftResponseDto `json:"shifts"`
	Page   int64               `json:"page"`
	Size   int64               `json:"size"`
}
