package events

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("event not found")

	// ErrClientNotFound возвращается, когда клиент события не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrEventBooked возвращается при попытке изменить расписание события,
	// у которого есть открытые бронирования. Окно такого события меняется
	// только через обновление бронирования, где заново проверяются конфликты.
	ErrEventBooked = errors.New("event has open bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidCategory возвращается при неизвестной категории события
	ErrInvalidCategory = errors.New("invalid event category")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
