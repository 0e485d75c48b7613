package auth

import (
	"strconv"

	"compro_backend/internal/models"
)

// Principal - аутентифицированный пользователь и токен, которым он представился.
// Создается AuthMiddleware и явно передается в сервисы.
type Principal struct {
	User    *models.User
	TokenID string
}

func (p *Principal) UserID() uint {
	if p == nil || p.User == nil {
		return 0
	}
	return p.User.ID
}

// UserIDString - для логгера
func (p *Principal) UserIDString() string {
	return strconv.FormatUint(uint64(p.UserID()), 10)
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.User != nil && p.User.IsAdmin()
}
