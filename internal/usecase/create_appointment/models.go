package create_appointment

import (
	"time"
)

// Request модель запроса на создание записи
//
// StylistID == nil включает автоподбор стилиста. UserID == nil означает
// гостевую запись: она разрешена только по коду ссылки стилиста и требует
// имени и телефона.
type Request struct {
	UserID        *int64
	CustomerName  *string
	CustomerPhone *string

	StylistID *int64
	ServiceID int64
	Date      time.Time
	StartTime string // "HH:MM"

	Notes        *string
	PayNow       bool
	ReferralCode *string
	BookingCode  *string // код персональной ссылки стилиста
}

// Response модель ответа на создание записи
type Response struct {
	ID              int64
	Kind            string
	StylistID       int64
	StylistName     string
	ServiceID       int64
	ServiceName     string
	BookingDate     time.Time
	StartTime       string
	DurationMinutes int
	Status          string
	TotalAmount     string
	RequiresPayment bool

	// CheckoutURL заполнен только при оплате онлайн
	CheckoutURL *string

	CreatedAt time.Time
}
