package match_venues

import (
	"context"

	matchVenues "github.com/avlko/GMA-BookingService/internal/usecase/match_venues"
)

type MatchVenuesUseCase interface {
	Execute(ctx context.Context, req *matchVenues.Request) (*matchVenues.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
