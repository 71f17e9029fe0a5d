package request_booking

import (
	"context"

	createBooking "github.com/avlko/GMA-BookingService/internal/usecase/create_booking"
)

type RequestBookingUseCase interface {
	ExecutePending(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
