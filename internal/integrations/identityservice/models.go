package identityservice

// User модель пользователя из IdentityService
type User struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	StylistID      *int64  `json:"stylist_id"`       // заполнен, если аккаунт привязан к стилисту
	CanManageStaff bool    `json:"can_manage_staff"` // менеджер: может править настройки любого стилиста
}

// ErrorResponse модель ошибки от IdentityService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
