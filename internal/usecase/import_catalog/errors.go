package import_catalog

import "errors"

var (
	// ErrUnreadableFile возвращается, когда CSV-файл не удалось прочитать целиком
	ErrUnreadableFile = errors.New("import_catalog: unreadable file")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("import_catalog: internal error")
)
