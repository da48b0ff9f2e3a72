package get_available_dates

import "time"

// Request модель запроса на получение доступных дат месяца
type Request struct {
	ShopID      string    // ID салона
	TreatmentID string    // ID процедуры
	Month       time.Time // Первый день запрошенного месяца
}

// Response модель ответа со списком дат, на которые есть хотя бы один
// свободный слот. Даты отсортированы по возрастанию.
type Response struct {
	Dates []time.Time
}
