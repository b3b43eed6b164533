package core

import "github.com/golang-jwt/jwt/v4"

// session middleware 驗證成功後塞進 gin context 的鍵
const ContextOwnerEmailKey = "session_owner_email"

// SessionClaims 第三方 session provider 簽發 token 內的內容，
// Email 即為租戶範圍（ownerEmail）。
type SessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
