package profileservice

// Profile модель профиля пользователя из identity-провайдера
type Profile struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`   // student | moderator | admin
	Status    string `json:"status"` // pending | approved | rejected | suspended
}

// Роли и статусы, известные сервису бронирования
const (
	RoleStudent   = "student"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"

	StatusApproved = "approved"
)

// IsApproved возвращает true, если пользователю разрешено бронировать.
// Администраторы и модераторы бронируют независимо от статуса одобрения.
func (p *Profile) IsApproved() bool {
	if p.Role == RoleAdmin || p.Role == RoleModerator {
		return true
	}
	return p.Status == StatusApproved
}

// IsAdmin возвращает true для административных ролей
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin || p.Role == RoleModerator
}

// ErrorResponse модель ошибки от identity-провайдера
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
