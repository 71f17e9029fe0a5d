package event

import "errors"

var (
	ErrEventNotFound = errors.New("event.repository: event not found")
	ErrBuildQuery    = errors.New("event.repository: failed to build query")
	ErrExecQuery     = errors.New("event.repository: failed to execute query")
	ErrScanRow       = errors.New("event.repository: failed to scan row")
)
