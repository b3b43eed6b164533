package model

// ShiftAuditLog 記錄班表異動軌跡（建立／更新／封存／還原／刪除）
type ShiftAuditLog struct {
	RequestID  string `bson:"request_id,omitempty" json:"request_id,omitempty"`
	OwnerEmail string `bson:"owner_email" json:"owner_email"`
	ShiftID    string `bson:"shift_id" json:"shift_id"`
	Action     string `bson:"action" json:"action"`
	FromStatus string `bson:"from_status,omitempty" json:"from_status,omitempty"`
	ToStatus   string `bson:"to_status,omitempty" json:"to_status,omitempty"`
	Version    string `bson:"version" json:"version"`
	LoggedAt   string `bson:"logged_at" json:"logged_at"`
}
