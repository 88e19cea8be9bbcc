package get_available_slots

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// generateSlots генерирует доступные слоты внутри рабочего окна стилиста.
//
// Кандидаты идут по сетке с шагом cadenceMinutes от начала окна. Кандидат
// попадает в результат, если он целиком помещается в окно (конец слота не
// позже конца окна) и не пересекается ни с одной активной записью.
//
// Пересечение проверяется по строгим неравенствам: запись, заканчивающаяся
// ровно в момент начала слота, слоту не мешает.
func generateSlots(
	windowStart, windowEnd types.TimeString,
	durationMinutes, cadenceMinutes int,
	existing []*domain.Appointment,
) ([]domain.Slot, error) {
	// Интервалы занятых записей вычисляем один раз
	busy := make([]domain.Interval, 0, len(existing))
	for _, apt := range existing {
		iv, err := apt.Interval()
		if err != nil {
			// Запись с интервалом за полночь не может мешать дневной сетке
			continue
		}
		busy = append(busy, iv)
	}

	slots := make([]domain.Slot, 0)
	current := windowStart

	for current.IsBefore(windowEnd) {
		slotEnd, err := current.AddMinutes(durationMinutes)
		if err != nil {
			// Слот пересек полночь - дальше кандидатов нет
			break
		}
		if slotEnd.IsAfter(windowEnd) {
			break
		}

		candidate := domain.Interval{Start: current, End: slotEnd}
		free := true
		for _, iv := range busy {
			if candidate.Overlaps(iv) {
				free = false
				break
			}
		}

		if free {
			slots = append(slots, domain.Slot{
				StartTime:       current,
				EndTime:         slotEnd,
				DurationMinutes: durationMinutes,
			})
		}

		next, err := current.AddMinutes(cadenceMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return slots, nil
}
