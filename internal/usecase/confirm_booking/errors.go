package confirm_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("confirm_booking: booking not found")

	// ErrCannotConfirm возвращается при подтверждении не-ожидающего бронирования
	ErrCannotConfirm = errors.New("confirm_booking: only pending bookings can be confirmed")

	// ErrSchedulingConflict возвращается, когда окно заявки уже занято
	// подтвержденным бронированием
	ErrSchedulingConflict = errors.New("confirm_booking: scheduling conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
