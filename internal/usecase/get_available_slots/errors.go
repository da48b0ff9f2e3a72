package get_available_slots

import "errors"

var (
	// ErrShopNotFound возвращается, когда салон не найден
	ErrShopNotFound = errors.New("get_available_slots: shop not found")

	// ErrTreatmentNotFound возвращается, когда процедура не найдена
	ErrTreatmentNotFound = errors.New("get_available_slots: treatment not found")

	// ErrInvalidSchedule возвращается при битом расписании салона.
	// Не превращается в пустой ответ: ошибка конфигурации должна быть видна.
	ErrInvalidSchedule = errors.New("get_available_slots: invalid shop schedule")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
