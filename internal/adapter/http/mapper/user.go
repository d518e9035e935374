package mapper

import (
	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

// ToUserItem never exposes the stored password.
func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:    string(user.ID),
		Name:  user.Name,
		Email: user.Email,
	}
}
