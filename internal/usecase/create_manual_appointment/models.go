package create_manual_appointment

import (
	"time"
)

// Request модель запроса стилиста на ручное добавление записи
//
// Клиент задается свободным текстом: у него может не быть аккаунта.
// Если услуга не указана, длительность обязательна; если указана,
// длительность по умолчанию берется из условий услуги у стилиста.
type Request struct {
	UserID int64 // аккаунт стилиста, который добавляет запись

	CustomerName  string
	CustomerPhone *string

	ServiceID       *int64
	DurationMinutes *int

	Date      time.Time
	StartTime string // "HH:MM"
	Notes     *string
}

// Response модель ответа на ручное добавление записи
type Response struct {
	ID              int64
	Kind            string
	StylistID       int64
	CustomerName    string
	ServiceID       *int64
	ServiceName     *string
	BookingDate     time.Time
	StartTime       string
	DurationMinutes int
	Status          string
	TotalAmount     string
	CreatedAt       time.Time
}
