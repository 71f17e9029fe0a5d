package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlko/GMA-BookingService/internal/domain"
	"github.com/avlko/GMA-BookingService/internal/finance"
	bookingRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/booking"
	clientRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/client"
	eventRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/event"
	venueRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/venue"
	"github.com/avlko/GMA-BookingService/internal/schedule"
	"github.com/avlko/GMA-BookingService/pkg/money"
)

// UseCase use case для обновления бронирования: перенос на другую площадку,
// замена события, дата или время. Проверки вместимости и конфликтов выполняются заново
// для целевого окна; собственное бронирование из проверки исключается,
// чтобы оно не конфликтовало само с собой. При любой неудаче бронирование
// остается нетронутым.
type UseCase struct {
	bookingRepo BookingRepository
	venueRepo   VenueRepository
	eventRepo   EventRepository
	clientRepo  ClientRepository
	txManager   TransactionManager
	venueLocker VenueLocker
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	eventRepo EventRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	venueLocker VenueLocker,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		eventRepo:   eventRepo,
		clientRepo:  clientRepo,
		txManager:   txManager,
		venueLocker: venueLocker,
		logger:      logger,
	}
}

// Execute выполняет обновление бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("UpdateBooking: booking=%d", req.BookingID)

	// 1. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// Отмененное бронирование не переносится
	if !booking.CanBeUpdated() {
		uc.logger.Warn("UpdateBooking: booking id=%d is cancelled", req.BookingID)
		return nil, ErrBookingClosed
	}

	// 2. Получаем целевое событие: свое или новое при замене
	eventID := booking.EventID
	if req.EventID != nil {
		eventID = *req.EventID
	}

	event, err := uc.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			uc.logger.Warn("UpdateBooking: event id=%d not found", eventID)
			return nil, ErrEventNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get event id=%d: %v", eventID, err)
		return nil, fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
	}

	// 3. Вычисляем целевое окно: незатронутые поля берутся из текущего
	// бронирования. При замене события окно по умолчанию следует
	// за расписанием нового события.
	target := domain.Booking{
		EventID:       event.ID,
		VenueID:       booking.VenueID,
		ClientID:      event.ClientID,
		BookingDate:   booking.BookingDate,
		StartTime:     booking.StartTime,
		DurationHours: booking.DurationHours,
		EventName:     event.Name,
		VenueName:     booking.VenueName,
	}
	if req.EventID != nil {
		target.BookingDate = event.Date
		target.StartTime = event.StartTime
		target.DurationHours = event.DurationHours
	}
	if req.VenueID != nil {
		target.VenueID = *req.VenueID
	}
	if req.Date != nil {
		target.BookingDate = *req.Date
	}
	if req.StartTime != nil {
		target.StartTime = *req.StartTime
	}
	if req.DurationHours != nil {
		target.DurationHours = *req.DurationHours
	}

	// Целевое окно не должно пересекать полночь
	if _, err := target.StartTime.AddHours(target.DurationHours); err != nil {
		uc.logger.Warn("UpdateBooking: booking id=%d target window crosses midnight", req.BookingID)
		return nil, fmt.Errorf("%w: window must not cross midnight", ErrInvalidInput)
	}

	// 4. Получаем целевую площадку
	venue, err := uc.venueRepo.GetByID(ctx, target.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("UpdateBooking: venue id=%d not found", target.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get venue id=%d: %v", target.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}
	target.VenueName = venue.Name

	// 5. Проверяем вместимость целевой площадки
	if !venue.CanHost(event.RequiredCapacity) {
		uc.logger.Warn("UpdateBooking: venue id=%d capacity=%d below required=%d",
			venue.ID, venue.Capacity, event.RequiredCapacity)
		return nil, fmt.Errorf("%w: venue holds %d, event needs %d",
			ErrCapacityExceeded, venue.Capacity, event.RequiredCapacity)
	}

	// 6. Клиент целевого события: нужен для финансовых показателей в ответе
	client, err := uc.clientRepo.GetByID(ctx, target.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("UpdateBooking: client id=%d not found", target.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get client id=%d: %v", target.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 7. Перепроверка конфликтов и атомарная замена слота.
	// Держим мьютексы старой и новой площадок: перенос освобождает окно
	// на одной и занимает на другой.
	err = uc.venueLocker.DoPair(ctx, booking.VenueID, target.VenueID, func(lockCtx context.Context) error {
		return uc.txManager.DoSerializable(lockCtx, func(txCtx context.Context) error {
			// 7.1. Открытые бронирования целевой площадки на целевую дату,
			// исключая собственное бронирование
			filter := domain.VenueBookingsFilter{
				VenueID:   target.VenueID,
				Date:      &target.BookingDate,
				ExcludeID: &booking.ID,
			}

			others, err := uc.bookingRepo.ListWithFilter(txCtx, filter)
			if err != nil {
				uc.logger.Error("UpdateBooking: failed to get bookings: %v", err)
				return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
			}

			// 7.2. Проверяем пересечение целевого окна с подтвержденными бронированиями
			conflict, err := schedule.HasConflict(target.VenueID, target.BookingDate, target.StartTime, target.DurationHours, others)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}

			if conflict {
				uc.logger.Warn("UpdateBooking: venue id=%d is busy on %s at %s",
					target.VenueID, target.BookingDate.Format(domain.DateFormat), target.StartTime)
				return ErrSchedulingConflict
			}

			// 7.3. Заменяем слот бронирования
			if err := uc.bookingRepo.UpdateSlot(txCtx, booking.ID, target); err != nil {
				if errors.Is(err, bookingRepo.ErrBookingNotFound) {
					return ErrBookingNotFound
				}
				uc.logger.Error("UpdateBooking: failed to update slot: %v", err)
				return fmt.Errorf("%w: failed to update slot: %v", ErrInternal, err)
			}

			// 7.4. Окно события следует за бронированием
			if err := uc.eventRepo.UpdateSchedule(txCtx, event.ID, target.BookingDate, target.StartTime, target.DurationHours); err != nil {
				uc.logger.Error("UpdateBooking: failed to update event schedule: %v", err)
				return fmt.Errorf("%w: failed to update event schedule: %v", ErrInternal, err)
			}

			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully moved booking id=%d to venue=%d, %s %s",
		booking.ID, target.VenueID, target.BookingDate.Format(domain.DateFormat), target.StartTime)

	event.DurationHours = target.DurationHours
	financials := finance.Compute(venue, event, client).Rounded()

	return &Response{
		ID:            booking.ID,
		EventID:       target.EventID,
		VenueID:       target.VenueID,
		ClientID:      target.ClientID,
		BookingDate:   target.BookingDate,
		StartTime:     target.StartTime,
		DurationHours: target.DurationHours,
		Status:        string(booking.Status),
		EventName:     target.EventName,
		VenueName:     target.VenueName,
		HirePrice:     financials.HirePrice,
		Commission:    financials.Commission,
		Total:         financials.Total,
		TotalDisplay:  money.FormatAmount(financials.Total),
	}, nil
}
