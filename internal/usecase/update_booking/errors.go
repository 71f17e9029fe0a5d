package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrBookingClosed возвращается при попытке изменить отмененное бронирование
	ErrBookingClosed = errors.New("update_booking: booking is cancelled")

	// ErrVenueNotFound возвращается, когда целевая площадка не найдена
	ErrVenueNotFound = errors.New("update_booking: venue not found")

	// ErrEventNotFound возвращается, когда событие бронирования не найдено
	ErrEventNotFound = errors.New("update_booking: event not found")

	// ErrClientNotFound возвращается, когда клиент бронирования не найден
	ErrClientNotFound = errors.New("update_booking: client not found")

	// ErrCapacityExceeded возвращается, когда вместимость целевой площадки
	// меньше требуемой вместимости события
	ErrCapacityExceeded = errors.New("update_booking: venue capacity exceeded")

	// ErrSchedulingConflict возвращается, когда новое окно пересекается
	// с подтвержденным бронированием целевой площадки
	ErrSchedulingConflict = errors.New("update_booking: scheduling conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
