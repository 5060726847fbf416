package dto

type CreateUserInput struct {
	FirstName string  `json:"firstname" binding:"required"`
	LastName  string  `json:"lastname" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8"`
	PhotoName *string `json:"photo_name"`
	Role      string  `json:"role"`
}

// UserResponse は公開可能なユーザー情報のみを返す（パスワードは含めない）
type UserResponse struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"firstname"`
	LastName  string  `json:"lastname"`
	Email     string  `json:"email"`
	PhotoName *string `json:"photo_name"`
	Role      string  `json:"role"`
}
