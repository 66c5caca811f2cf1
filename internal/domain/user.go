package domain

import "time"

type Role string

const (
	RoleParticipant Role = "participant"
	RoleFacilitator Role = "facilitator"
)

func (r Role) Valid() bool {
	return r == RoleParticipant || r == RoleFacilitator
}

type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (u *User) IsFacilitator() bool {
	return u.Role == RoleFacilitator
}
