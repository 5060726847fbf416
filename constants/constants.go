package constants

import "time"

// ユーザーロール
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// アクセストークンの有効期限
const TokenTTL = 30 * time.Minute

// アイテム一覧のlimitパラメータの上限
const MaxPageSize = 100

// エラーメッセージ
const (
	ErrItemNotFound       = "Item not found"
	ErrUnexpected         = "Unexpected error"
	ErrInvalidID          = "Invalid id"
	ErrInvalidInput       = "Invalid input"
	ErrInvalidCredentials = "Incorrect email or password"
	ErrInvalidToken       = "Invalid token"
	ErrAdminOnly          = "Access denied: admin only"
)
