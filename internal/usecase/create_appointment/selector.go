package create_appointment

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// termsFor возвращает условия услуги у кандидата.
// (nil, nil) означает "кандидат не предоставляет услугу" и не является ошибкой.
type termsFor func(stylistID int64) (*domain.ServiceTerms, error)

// dayFor возвращает активные записи кандидата на дату.
type dayFor func(stylistID int64) ([]*domain.Appointment, error)

// selectStylist выбирает первого подходящего стилиста из кандидатов.
//
// Кандидаты приходят уже упорядоченными по приоритету, поэтому выбор
// детерминирован: первый, кто работает в это время, предоставляет услугу
// и не имеет пересекающихся записей. Занятость проверяется по пересечению
// интервалов, а не по точному совпадению начала: стилист с записью
// 10:00-11:30 не получит клиента на 11:00.
func selectStylist(
	candidates []*domain.Stylist,
	start types.TimeString,
	salonOpen, salonClose types.TimeString,
	terms termsFor,
	day dayFor,
) (*domain.Stylist, *domain.ServiceTerms, error) {
	for _, candidate := range candidates {
		// Обе границы рабочего окна включительны
		if !candidate.IsAvailableAt(start, salonOpen, salonClose) {
			continue
		}

		candidateTerms, err := terms(candidate.ID)
		if err != nil {
			return nil, nil, err
		}
		if candidateTerms == nil {
			// Не предоставляет услугу - пропускаем, не ошибка
			continue
		}

		requested, err := domain.NewInterval(start, candidateTerms.DurationMinutes)
		if err != nil {
			// Услуга не помещается до полуночи у этого кандидата
			continue
		}

		existing, err := day(candidate.ID)
		if err != nil {
			return nil, nil, err
		}

		if fitsCalendar(requested, existing) {
			return candidate, candidateTerms, nil
		}
	}

	return nil, nil, ErrNoStylistAvailable
}

// fitsCalendar проверяет, что интервал не пересекается ни с одной записью
func fitsCalendar(requested domain.Interval, existing []*domain.Appointment) bool {
	for _, apt := range existing {
		iv, err := apt.Interval()
		if err != nil {
			continue
		}
		if requested.Overlaps(iv) {
			return false
		}
	}
	return true
}
