package imports

import "errors"

var (
	// ErrInvalidDate возвращается, когда дату не удалось разобрать ни одним из поддерживаемых форматов
	ErrInvalidDate = errors.New("imports: unrecognized date format")

	// ErrInvalidTime возвращается, когда время не удалось разобрать ни одним из поддерживаемых форматов
	ErrInvalidTime = errors.New("imports: unrecognized time format")

	// ErrInvalidRow возвращается при некорректной строке CSV (не хватает колонок, нечисловые значения)
	ErrInvalidRow = errors.New("imports: invalid row")

	// ErrReadFailed возвращается при ошибке чтения входного CSV
	ErrReadFailed = errors.New("imports: failed to read csv")
)
