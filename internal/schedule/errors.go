package schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (неположительная длительность, некорректное время начала)
	ErrInvalidInput = errors.New("schedule: invalid input")
)
