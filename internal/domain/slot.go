package domain

import (
	"github.com/jellomark/reservation-service/pkg/types"
)

// AvailableSlot represents a candidate start time within a day's open hours.
// Duration is implied by the queried treatment and is not stored here.
type AvailableSlot struct {
	StartTime types.TimeString
	Available bool
}

// GenerateSlotStarts генерирует кандидатные времена начала для одного дня:
// все t, такие что t >= open и t + durationMinutes <= close, с шагом stepMinutes.
// Результат возрастающий и без дублей; чистая функция своих аргументов.
func GenerateSlotStarts(open, close types.TimeString, durationMinutes, stepMinutes int) []types.TimeString {
	starts := make([]types.TimeString, 0)

	if open.IsZero() || close.IsZero() || durationMinutes <= 0 || stepMinutes <= 0 {
		return starts
	}

	current := open
	for {
		end, err := current.AddMinutes(durationMinutes)
		if err != nil {
			// вышли за пределы суток - дальше слотов нет
			break
		}
		if end.IsAfter(close) {
			break
		}

		starts = append(starts, current)

		next, err := current.AddMinutes(stepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return starts
}

// Overlaps проверяет пересечение полуоткрытых интервалов [s1,e1) и [s2,e2).
// Строгие неравенства: интервалы, граничащие точно в одной точке
// (один заканчивается там, где начинается другой), НЕ пересекаются.
func Overlaps(s1, e1, s2, e2 types.TimeString) bool {
	return s1.IsBefore(e2) && s2.IsBefore(e1)
}

// HasConflict проверяет, конфликтует ли интервал [start,end) с существующими
// бронями. Учитываются только активные статусы (pending, confirmed):
// отклоненные, отмененные, завершенные и no-show брони немедленно
// освобождают свой интервал без какой-либо дополнительной очистки.
func HasConflict(start, end types.TimeString, reservations []*Reservation) bool {
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		if Overlaps(start, end, res.StartTime, res.EndTime) {
			return true
		}
	}
	return false
}
