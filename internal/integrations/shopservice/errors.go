package shopservice

import "errors"

var (
	// ErrShopNotFound возвращается, когда салон не найден
	ErrShopNotFound = errors.New("shopservice client: shop not found")

	// ErrTreatmentNotFound возвращается, когда процедура не найдена
	ErrTreatmentNotFound = errors.New("shopservice client: treatment not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("shopservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("shopservice client: invalid response")
)
