package get_available_slots

import (
	"time"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	StylistID int64     // ID стилиста
	ServiceID int64     // ID услуги
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	StylistID       int64     // ID стилиста
	ServiceID       int64     // ID услуги
	ServiceDuration int       // Действующая длительность услуги у стилиста
	EffectivePrice  string    // Действующая цена услуги у стилиста
	Slots           []Slot    // Список доступных слотов
}

// Slot модель временного слота
type Slot struct {
	StartTime string // Время начала слота, "10:00"
	EndTime   string // Время окончания слота, "11:00"
}
