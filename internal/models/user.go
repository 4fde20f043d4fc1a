package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User - зарегистрированный пользователь (репортер или исполнитель)
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// FullName возвращает отображаемое имя пользователя,
// либо username, если имя не заполнено
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}
