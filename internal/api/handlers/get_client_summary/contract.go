package get_client_summary

import (
	"context"

	"github.com/avlko/GMA-BookingService/internal/service/clients/models"
)

type ClientsService interface {
	GetSummary(ctx context.Context, id int64) (*models.ClientSummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
