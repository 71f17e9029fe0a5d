package match_venues

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("match_venues: event not found")

	// ErrClientNotFound возвращается, когда клиент события не найден
	ErrClientNotFound = errors.New("match_venues: client not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("match_venues: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("match_venues: internal error")
)
