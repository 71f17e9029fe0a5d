package matching

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных площадки или события
	// (неположительная вместимость или длительность)
	ErrInvalidInput = errors.New("matching: invalid input")
)
