package models

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// BookingLinkResponse ответ с данными ссылки для записи
type BookingLinkResponse struct {
	Code              string `json:"code"`
	IsActive          bool   `json:"isActive"`
	MaxAdvanceDays    int    `json:"maxAdvanceDays"`
	AllowGuestBooking bool   `json:"allowGuestBooking"`
}

// BookingPageResponse публичная страница записи по коду
type BookingPageResponse struct {
	StylistID         int64  `json:"stylistId"`
	StylistName       string `json:"stylistName"`
	Bio               string `json:"bio"`
	MaxAdvanceDays    int    `json:"maxAdvanceDays"`
	AllowGuestBooking bool   `json:"allowGuestBooking"`
}

// FromDomainBookingLink конвертирует domain модель в DTO
func FromDomainBookingLink(l *domain.BookingLink) *BookingLinkResponse {
	if l == nil {
		return nil
	}
	return &BookingLinkResponse{
		Code:              l.Code,
		IsActive:          l.IsActive,
		MaxAdvanceDays:    l.MaxAdvanceDays,
		AllowGuestBooking: l.AllowGuestBooking,
	}
}
