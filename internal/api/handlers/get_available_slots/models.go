package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	StylistID       int64           `json:"stylistId"`
	ServiceID       int64           `json:"serviceId"`
	ServiceDuration int             `json:"serviceDuration"`
	EffectivePrice  string          `json:"effectivePrice"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		StylistID:       resp.StylistID,
		ServiceID:       resp.ServiceID,
		ServiceDuration: resp.ServiceDuration,
		EffectivePrice:  resp.EffectivePrice,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров маршрута
func ToUseCaseRequest(stylistID, serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		StylistID: stylistID,
		ServiceID: serviceID,
		Date:      date,
	}, nil
}
