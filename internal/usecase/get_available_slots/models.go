package get_available_slots

import (
	"time"

	"github.com/jellomark/reservation-service/pkg/types"
)

// Request модель запроса на получение слотов на дату
type Request struct {
	ShopID      string    // ID салона
	TreatmentID string    // ID процедуры (определяет длительность слота)
	Date        time.Time // Дата, на которую запрашиваются слоты
}

// Response модель ответа с полной сеткой слотов на день.
// В ответ входят и занятые слоты (Available=false), чтобы клиент мог
// отрисовать сетку целиком, а не только свободные времена.
type Response struct {
	Date      time.Time
	OpenTime  types.TimeString // пустое, если салон закрыт
	CloseTime types.TimeString // пустое, если салон закрыт
	Slots     []Slot
}

// Slot кандидатное время начала процедуры
type Slot struct {
	StartTime types.TimeString
	Available bool
}
