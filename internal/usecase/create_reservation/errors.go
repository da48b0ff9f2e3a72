package create_reservation

import "errors"

var (
	// ErrTreatmentNotFound возвращается, когда процедура не найдена
	ErrTreatmentNotFound = errors.New("create_reservation: treatment not found")

	// ErrShopNotFound возвращается, когда салон не найден
	ErrShopNotFound = errors.New("create_reservation: shop not found")

	// ErrTreatmentNotInShop возвращается, когда процедура принадлежит другому салону
	ErrTreatmentNotInShop = errors.New("create_reservation: treatment does not belong to shop")

	// ErrPastReservationDate возвращается при попытке брони на прошедшую дату.
	// Сравнивается только дата: время дня в пределах сегодняшнего дня
	// намеренно не проверяется.
	ErrPastReservationDate = errors.New("create_reservation: reservation date is in the past")

	// ErrShopClosed возвращается, когда салон закрыт в выбранную дату
	ErrShopClosed = errors.New("create_reservation: shop is closed on this date")

	// ErrOutsideOperatingHours возвращается, когда интервал брони выходит
	// за пределы рабочих часов салона
	ErrOutsideOperatingHours = errors.New("create_reservation: time is outside operating hours")

	// ErrInvalidSchedule возвращается при битом расписании салона
	ErrInvalidSchedule = errors.New("create_reservation: invalid shop schedule")

	// ErrTimeConflict возвращается, когда интервал пересекается с активной бронью
	// (обнаружено проверкой или exclusion constraint при записи)
	ErrTimeConflict = errors.New("create_reservation: reservation time conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
