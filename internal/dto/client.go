package dto

// 建立客戶
type CreateClientDto struct {
	Name     string `json:"name" binding:"required,max=200"`
	Address  string `json:"address,omitempty" binding:"omitempty,max=300"`
	Suburb   string `json:"suburb,omitempty" binding:"omitempty,max=100"`
	State    string `json:"state,omitempty" binding:"omitempty,max=50"`
	Postcode string `json:"postcode,omitempty" binding:"omitempty,max=12"`

	ClientTypeID string `json:"clientTypeId,omitempty"`
	// 舊欄位名
	ClientType string `json:"clientType,omitempty"`

	PhoneNumber   string `json:"phoneNumber,omitempty" binding:"omitempty,max=30"`
	ContactPerson string `json:"contactPerson,omitempty" binding:"omitempty,max=200"`
	ContactPhone  string `json:"contactPhone,omitempty" binding:"omitempty,max=30"`
	Email         string `json:"email,omitempty" binding:"omitempty,email"`

	Active *bool `json:"active,omitempty"` // 預設 true
}

func (dto *CreateClientDto) Normalize() {
	if dto.ClientTypeID == "" && dto.ClientType != "" {
		dto.ClientTypeID = dto.ClientType
	}
}

// 更新客戶（merge-patch）
type UpdateClientDto struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,max=200"`
	Address  *string `json:"address,omitempty" binding:"omitempty,max=300"`
	Suburb   *string `json:"suburb,omitempty" binding:"omitempty,max=100"`
	State    *string `json:"state,omitempty" binding:"omitempty,max=50"`
	Postcode *string `json:"postcode,omitempty" binding:"omitempty,max=12"`

	ClientTypeID *string `json:"clientTypeId,omitempty"`
	ClientType   *string `json:"clientType,omitempty"`

	PhoneNumber   *string `json:"phoneNumber,omitempty" binding:"omitempty,max=30"`
	ContactPerson *string `json:"contactPerson,omitempty" binding:"omitempty,max=200"`
	ContactPhone  *string `json:"contactPhone,omitempty" binding:"omitempty,max=30"`
	Email         *string `json:"email,omitempty" binding:"omitempty,email"`

	Active *bool `json:"active,omitempty"`
}

func (dto *UpdateClientDto) Normalize() {
	if dto.ClientTypeID == nil && dto.ClientType != nil {
		dto.ClientTypeID = dto.ClientType
	}
}

type ClientResponseDto struct {
	ID         string `json:"id"`
	OwnerEmail string `json:"ownerEmail"`
	Name       string `json:"name"`

	Address  string `json:"address,omitempty"`
	Suburb   string `json:"suburb,omitempty"`
	State    string `json:"state,omitempty"`
	Postcode string `json:"postcode,omitempty"`

	ClientTypeID   string `json:"clientTypeId,omitempty"`
	ClientTypeName string `json:"clientTypeName,omitempty"`

	PhoneNumber   string `json:"phoneNumber,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`
	ContactPhone  string `json:"contactPhone,omitempty"`
	Email         string `json:"email,omitempty"`

	Active     bool   `json:"active"`
	Archived   bool   `json:"archived"`
	ArchivedAt string `json:"archivedAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type ClientListResponseDto struct {
	Clients []*ClientResponseDto `json:"clients"`
	Page    int64                `json:"page"`
	Size    int64                `json:"size"`
}
