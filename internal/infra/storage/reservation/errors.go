package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrTimeConflict возвращается, когда вставка нарушает exclusion constraint
	// на (shop_id, reservation_date, интервал времени) для активных броней
	ErrTimeConflict = errors.New("reservation.repository: reservation time conflict")

	// ErrStatusConflict возвращается, когда compare-and-set обновление статуса
	// не нашло строку с ожидаемым статусом (конкурирующий переход успел раньше)
	ErrStatusConflict = errors.New("reservation.repository: status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
