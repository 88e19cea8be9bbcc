package list_available_stylists

import (
	"time"
)

// Request модель запроса списка свободных стилистов на момент времени
//
// ServiceID опционален: без него проверяется только рабочее окно и
// отсутствие записи, перекрывающей момент.
type Request struct {
	ServiceID *int64
	Date      time.Time
	Time      string // "HH:MM"
}

// Response модель ответа со свободными стилистами
type Response struct {
	Date     string             `json:"date"`
	Time     string             `json:"time"`
	Stylists []AvailableStylist `json:"stylists"`
}

// AvailableStylist стилист, доступный на запрошенный момент
type AvailableStylist struct {
	ID              int64  `json:"id"`
	DisplayName     string `json:"display_name"`
	ExperienceYears int    `json:"experience_years"`
	PriorityLevel   int    `json:"priority_level"`

	// Заполнены только при запросе с конкретной услугой
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	EffectivePrice  *string `json:"effective_price,omitempty"`
}
