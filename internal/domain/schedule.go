package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jellomark/reservation-service/pkg/types"
)

// scheduleClosed литеральный маркер выходного дня в расписании салона
const scheduleClosed = "closed"

// ErrInvalidSchedule возвращается при некорректных данных расписания салона.
// Битое расписание - это ошибка конфигурации, она должна быть видна оператору,
// а не превращаться в ложное "закрыто" для клиентов.
var ErrInvalidSchedule = errors.New("domain: invalid operating schedule")

// WeekSchedule недельное расписание работы салона: день недели
// (английское название в нижнем регистре) -> "closed" | "HH:MM-HH:MM".
// Отсутствующий день трактуется так же, как "closed".
type WeekSchedule map[string]string

// DayHours часы работы салона на конкретную дату
type DayHours struct {
	Open  types.TimeString
	Close types.TimeString
}

// HoursFor возвращает часы работы на дату.
// ok == false означает, что салон в этот день закрыт (включая
// отсутствующий день недели) - это не ошибка.
func (ws WeekSchedule) HoursFor(date time.Time) (DayHours, bool, error) {
	weekday := strings.ToLower(date.Weekday().String())

	value, found := ws.lookup(weekday)
	if !found {
		return DayHours{}, false, nil
	}

	if strings.EqualFold(strings.TrimSpace(value), scheduleClosed) {
		return DayHours{}, false, nil
	}

	hours, err := parseHoursRange(value)
	if err != nil {
		return DayHours{}, false, fmt.Errorf("%w: %s=%q: %v", ErrInvalidSchedule, weekday, value, err)
	}

	return hours, true, nil
}

// IsOpen проверяет, открыт ли салон на дату
func (ws WeekSchedule) IsOpen(date time.Time) (bool, error) {
	_, open, err := ws.HoursFor(date)
	return open, err
}

// lookup ищет день недели без учета регистра; ключи,
// не являющиеся днями недели, игнорируются
func (ws WeekSchedule) lookup(weekday string) (string, bool) {
	if v, ok := ws[weekday]; ok {
		return v, true
	}
	for k, v := range ws {
		if strings.EqualFold(k, weekday) {
			return v, true
		}
	}
	return "", false
}

// parseHoursRange парсит диапазон "HH:MM-HH:MM"
func parseHoursRange(value string) (DayHours, error) {
	parts := strings.Split(strings.TrimSpace(value), "-")
	if len(parts) != 2 {
		return DayHours{}, fmt.Errorf("expected HH:MM-HH:MM range")
	}

	open, err := types.NewTimeStringFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return DayHours{}, fmt.Errorf("invalid open time: %v", err)
	}

	close, err := types.NewTimeStringFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return DayHours{}, fmt.Errorf("invalid close time: %v", err)
	}

	if !open.IsBefore(close) {
		return DayHours{}, fmt.Errorf("open time must be before close time")
	}

	return DayHours{Open: open, Close: close}, nil
}
