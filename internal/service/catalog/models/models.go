package models

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модели

// UpdateScheduleRequest запрос на обновление расписания стилиста
// nil-поля не изменяются
type UpdateScheduleRequest struct {
	UserID            int64   `json:"userId"`
	WorkingHoursStart *string `json:"workingHoursStart,omitempty"` // "HH:MM"
	WorkingHoursEnd   *string `json:"workingHoursEnd,omitempty"`   // "HH:MM"
	AcceptsWalkIns    *bool   `json:"acceptsWalkIns,omitempty"`
	PriorityLevel     *int    `json:"priorityLevel,omitempty"`
	IsActive          *bool   `json:"isActive,omitempty"`
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           string `json:"price"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// StylistResponse ответ с данными стилиста
type StylistResponse struct {
	ID                int64   `json:"id"`
	DisplayName       string  `json:"displayName"`
	Bio               string  `json:"bio"`
	ExperienceYears   int     `json:"experienceYears"`
	WorkingHoursStart *string `json:"workingHoursStart,omitempty"`
	WorkingHoursEnd   *string `json:"workingHoursEnd,omitempty"`
	AcceptsWalkIns    bool    `json:"acceptsWalkIns"`
	PriorityLevel     int     `json:"priorityLevel"`
	IsActive          bool    `json:"isActive"`
}

// StylistListResponse ответ со списком стилистов
type StylistListResponse struct {
	Stylists []StylistResponse `json:"stylists"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель услуги в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price.StringFixed(2),
	}
}

// FromDomainServiceList конвертирует список услуг в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}
	for _, s := range services {
		if sr := FromDomainService(s); sr != nil {
			resp.Services = append(resp.Services, *sr)
		}
	}
	return resp
}

// FromDomainStylist конвертирует domain модель стилиста в DTO
func FromDomainStylist(s *domain.Stylist) *StylistResponse {
	if s == nil {
		return nil
	}

	resp := &StylistResponse{
		ID:              s.ID,
		DisplayName:     s.DisplayName,
		Bio:             s.Bio,
		ExperienceYears: s.ExperienceYears,
		AcceptsWalkIns:  s.AcceptsWalkIns,
		PriorityLevel:   s.PriorityLevel,
		IsActive:        s.IsActive,
	}

	if s.WorkingHoursStart != nil {
		start := s.WorkingHoursStart.String()
		resp.WorkingHoursStart = &start
	}
	if s.WorkingHoursEnd != nil {
		end := s.WorkingHoursEnd.String()
		resp.WorkingHoursEnd = &end
	}

	return resp
}

// FromDomainStylistList конвертирует список стилистов в DTO
func FromDomainStylistList(stylists []*domain.Stylist) *StylistListResponse {
	resp := &StylistListResponse{
		Stylists: make([]StylistResponse, 0, len(stylists)),
	}
	for _, s := range stylists {
		if sr := FromDomainStylist(s); sr != nil {
			resp.Stylists = append(resp.Stylists, *sr)
		}
	}
	return resp
}
