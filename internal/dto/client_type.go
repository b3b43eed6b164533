package dto

// 建立客戶類型
type CreateClientTypeDto struct {
	Name string `json:"name" binding:"required,max=100"`
}

type ClientTypeResponseDto struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
