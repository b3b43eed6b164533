package model

import (
	"time"

	"github.com/zungle102/shiftrec-sub000/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Shift 班表文件
// clientName 是舊世代文件殘留的反正規化欄位，只在 clientId 缺漏時
// 作為 name+owner 查詢的後備；一旦有 clientId，顯示欄位一律在讀取時重算。
type Shift struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	OwnerEmail string             `json:"ownerEmail" bson:"ownerEmail"`

	ServiceDate   string `json:"serviceDate" bson:"serviceDate"` // YYYY-MM-DD
	StartTime     string `json:"startTime" bson:"startTime"`     // HH:mm（當地時間）
	EndTime       string `json:"endTime" bson:"endTime"`
	BreakDuration int    `json:"breakDuration" bson:"breakDuration"` // 分鐘
	ServiceType   string `json:"serviceType,omitempty" bson:"serviceType,omitempty"`

	ClientID   *primitive.ObjectID `json:"clientId,omitempty" bson:"clientId,omitempty"`
	ClientName string              `json:"clientName,omitempty" bson:"clientName,omitempty"`

	AssignedStaffMemberID  *primitive.ObjectID  `json:"assignedStaffMemberId,omitempty" bson:"assignedStaffMemberId,omitempty"`
	NotifiedStaffMemberIDs []primitive.ObjectID `json:"notifiedStaffMemberIds,omitempty" bson:"notifiedStaffMemberIds,omitempty"`

	Status core.ShiftStatus `json:"status" bson:"status"`
	Note   string           `json:"note,omitempty" bson:"note,omitempty"`

	Archived   bool       `json:"archived" bson:"archived"`
	ArchivedAt *time.Time `json:"archivedAt,omitempty" bson:"archivedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`

	// 每個可達狀態各一個時間戳；在狀態「改變」時蓋章（含回頭再進入）
	PublishedAt          *time.Time `json:"publishedAt,omitempty" bson:"publishedAt,omitempty"`
	AssignedAt           *time.Time `json:"assignedAt,omitempty" bson:"assignedAt,omitempty"`
	ConfirmedAt          *time.Time `json:"confirmedAt,omitempty" bson:"confirmedAt,omitempty"`
	DeclinedAt           *time.Time `json:"declinedAt,omitempty" bson:"declinedAt,omitempty"`
	InProgressAt         *time.Time `json:"inProgressAt,omitempty" bson:"inProgressAt,omitempty"`
	CompletedAt          *time.Time `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	MissedAt             *time.Time `json:"missedAt,omitempty" bson:"missedAt,omitempty"`
	CanceledAt           *time.Time `json:"canceledAt,omitempty" bson:"canceledAt,omitempty"`
	TimesheetSubmittedAt *time.Time `json:"timesheetSubmittedAt,omitempty" bson:"timesheetSubmittedAt,omitempty"`
	ApprovedAt           *time.Time `json:"approvedAt,omitempty" bson:"approvedAt,omitempty"`
}

// StatusTimestamp 回傳指定狀態對應的時間戳（Drafted 回 nil）
func (s *Shift) StatusTimestamp(status core.ShiftStatus) *time.Time {
	switch status {
	case core.ShiftStatusPublished:
		return s.PublishedAt
	case core.ShiftStatusAssigned:
		return s.AssignedAt
	case core.ShiftStatusConfirmed:
		return s.ConfirmedAt
	case core.ShiftStatusDeclined:
		return s.DeclinedAt
	case core.ShiftStatusInProgress:
		return s.InProgressAt
	case core.ShiftStatusCompleted:
		return s.CompletedAt
	case core.ShiftStatusMissed:
		return s.MissedAt
	case core.ShiftStatusCanceled:
		return s.CanceledAt
	case core.ShiftStatusTimesheetSubmitted:
		return s.TimesheetSubmittedAt
	case core.ShiftStatusApproved:
		return s.ApprovedAt
	}
	return nil
}

var ShiftIndexes = []mongo.IndexModel{
	{ // 列表主查詢：租戶 + 封存旗標 + 服務日倒序
		Keys: bson.D{
			{Key: "ownerEmail", Value: 1},
			{Key: "archived", Value: 1},
			{Key: "serviceDate", Value: -1},
			{Key: "startTime", Value: -1},
		},
		Options: options.Index().SetName("idx_owner_archived_serviceDate"),
	},
	{
		Keys:    bson.D{{Key: "ownerEmail", Value: 1}, {Key: "clientId", Value: 1}},
		Options: options.Index().SetName("idx_owner_clientId"),
	},
	{
		Keys:    bson.D{{Key: "ownerEmail", Value: 1}, {Key: "assignedStaffMemberId", Value: 1}},
		Options: options.Index().SetName("idx_owner_assignedStaff"),
	},
	{
		Keys:    bson.D{{Key: "ownerEmail", Value: 1}, {Key: "status", Value: 1}},
		Options: options.Index().SetName("idx_owner_status"),
	},
}
