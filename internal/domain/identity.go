package domain

// Identity — подтверждённая личность вызывающего, построенная один раз
// при валидации токена и передаваемая по значению через все слои.
type Identity struct {
	UserID   int64
	Username string
	Roles    []string
}

func NewIdentity(userID int64, username string, roles []string) Identity {
	return Identity{
		UserID:   userID,
		Username: username,
		Roles:    roles,
	}
}

// HasRole сообщает, есть ли у личности указанная роль.
func (i Identity) HasRole(role string) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAnonymous — личность без идентификатора пользователя.
func (i Identity) IsAnonymous() bool {
	return i.UserID == 0
}
