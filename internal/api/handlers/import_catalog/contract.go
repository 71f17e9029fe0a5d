package import_catalog

import (
	"context"
	"io"

	importCatalog "github.com/avlko/GMA-BookingService/internal/usecase/import_catalog"
)

type ImportCatalogUseCase interface {
	ImportVenues(ctx context.Context, r io.Reader) (*importCatalog.Response, error)
	ImportEvents(ctx context.Context, r io.Reader) (*importCatalog.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
