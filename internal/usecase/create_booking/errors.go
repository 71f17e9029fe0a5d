package create_booking

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("create_booking: event not found")

	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrClientNotFound возвращается, когда клиент события не найден
	ErrClientNotFound = errors.New("create_booking: client not found")

	// ErrCapacityExceeded возвращается, когда вместимость площадки
	// меньше требуемой вместимости события
	ErrCapacityExceeded = errors.New("create_booking: venue capacity exceeded")

	// ErrSchedulingConflict возвращается, когда окно события пересекается
	// с подтвержденным бронированием площадки
	ErrSchedulingConflict = errors.New("create_booking: scheduling conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
