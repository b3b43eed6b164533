package dto

// 建立員工
type CreateStaffMemberDto struct {
	Name        string `json:"name" binding:"required,max=200"`
	Email       string `json:"email,omitempty" binding:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber,omitempty" binding:"omitempty,max=30"`
	Active      *bool  `json:"active,omitempty"` // 預設 true
}

// 更新員工（merge-patch）
type UpdateStaffMemberDto struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=200"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber,omitempty" binding:"omitempty,max=30"`
	Active      *bool   `json:"active,omitempty"`
}

type StaffMemberResponseDto struct {
	ID         string `json:"id"`
	OwnerEmail string `json:"ownerEmail"`
	Name       string `json:"name"`

	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`

	Active     bool   `json:"active"`
	Archived   bool   `json:"archived"`
	ArchivedAt string `json:"archivedAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type StaffMemberListResponseDto struct {
	StaffMembers []*StaffMemberResponseDto `json:"staffMembers"`
	Page         int64                     `json:"page"`
	Size         int64                     `json:"size"`
}
