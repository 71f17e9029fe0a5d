package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlko/GMA-BookingService/internal/domain"
	bookingRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/booking"
	"github.com/avlko/GMA-BookingService/internal/schedule"
)

// UseCase use case для подтверждения заявки на бронирование.
// Заявка (pending) не блокирует окно площадки, поэтому между ее созданием
// и подтверждением то же окно могло занять другое подтвержденное
// бронирование. Конфликты перепроверяются под мьютексом площадки внутри
// сериализуемой транзакции; занятое окно дает отказ, а не второе
// подтвержденное бронирование.
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	venueLocker VenueLocker
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	venueLocker VenueLocker,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		venueLocker: venueLocker,
		logger:      logger,
	}
}

// Execute подтверждает ожидающее бронирование.
// Разрешен только переход pending -> confirmed: подтвержденное повторно
// не подтверждается, отмененное не реанимируется.
func (uc *UseCase) Execute(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	uc.logger.Info("ConfirmBooking: confirming booking id=%d", id)

	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ConfirmBooking: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get booking id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !booking.CanBeConfirmed() {
		uc.logger.Warn("ConfirmBooking: booking id=%d has status=%s, cannot confirm", id, booking.Status)
		return fmt.Errorf("%w: status is %s", ErrCannotConfirm, booking.Status)
	}

	return uc.venueLocker.Do(ctx, booking.VenueID, func(lockCtx context.Context) error {
		return uc.txManager.DoSerializable(lockCtx, func(txCtx context.Context) error {
			// Открытые бронирования площадки на дату заявки
			filter := domain.VenueBookingsFilter{
				VenueID: booking.VenueID,
				Date:    &booking.BookingDate,
			}

			others, err := uc.bookingRepo.ListWithFilter(txCtx, filter)
			if err != nil {
				uc.logger.Error("ConfirmBooking: failed to get bookings: %v", err)
				return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
			}

			// Заявка не должна конфликтовать сама с собой
			others = schedule.WithoutBooking(others, booking.ID)

			conflict, err := schedule.HasConflict(booking.VenueID, booking.BookingDate, booking.StartTime, booking.DurationHours, others)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}

			if conflict {
				uc.logger.Warn("ConfirmBooking: venue id=%d is busy on %s at %s, booking id=%d stays pending",
					booking.VenueID, booking.BookingDate.Format(domain.DateFormat), booking.StartTime, id)
				return ErrSchedulingConflict
			}

			if err := uc.bookingRepo.UpdateStatus(txCtx, id, domain.StatusConfirmed); err != nil {
				if errors.Is(err, bookingRepo.ErrBookingNotFound) {
					return ErrBookingNotFound
				}
				uc.logger.Error("ConfirmBooking: failed to update status for booking id=%d: %v", id, err)
				return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
			}

			uc.logger.Info("ConfirmBooking: successfully confirmed booking id=%d", id)
			return nil
		})
	})
}
