package transition_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("transition_reservation: reservation not found")

	// ErrUnauthorizedAccess возвращается, когда инициатор не имеет права
	// выполнять действие над этой бронью
	ErrUnauthorizedAccess = errors.New("transition_reservation: access denied")

	// ErrInvalidStatusTransition возвращается, когда переход статуса
	// не разрешен из текущего состояния брони
	ErrInvalidStatusTransition = errors.New("transition_reservation: invalid status transition")

	// ErrReasonRequired возвращается, когда для отклонения не указана причина
	ErrReasonRequired = errors.New("transition_reservation: rejection reason is required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transition_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_reservation: internal error")
)
