package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlko/GMA-BookingService/internal/domain"
	"github.com/avlko/GMA-BookingService/internal/finance"
	clientRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/client"
	eventRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/event"
	venueRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/venue"
	"github.com/avlko/GMA-BookingService/internal/schedule"
	"github.com/avlko/GMA-BookingService/pkg/money"
)

// UseCase use case для создания бронирования.
// Одна и та же проверочная цепочка обслуживает два входа:
// ручное создание (сразу confirmed) и заявку из подбора площадок (pending).
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

// ExecuteConfirmed создает подтвержденное бронирование (ручное создание сотрудником).
// Подтвержденное бронирование сразу блокирует окно площадки.
func (uc *UseCase) ExecuteConfirmed(ctx context.Context, req *Request) (*Response, error) {
	return uc.execute(ctx, req, domain.StatusConfirmed)
}

// ExecutePending создает ожидающее бронирование (заявка из подбора площадок).
// Ожидающее бронирование окно не блокирует, пока его не подтвердят.
func (uc *UseCase) ExecutePending(ctx context.Context, req *Request) (*Response, error) {
	return uc.execute(ctx, req, domain.StatusPending)
}

// execute выполняет создание бронирования с запрошенным статусом.
// Проверка конфликтов и запись выполняются под мьютексом площадки
// и в сериализуемой транзакции, чтобы два параллельных запроса
// не забронировали одно окно дважды.
func (uc *UseCase) execute(ctx context.Context, req *Request, status domain.BookingStatus) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: event=%d, venue=%d, status=%s, createdBy=%s",
		req.EventID, req.VenueID, status, req.CreatedBy)

	// 1. Получаем событие
	event, err := uc.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			uc.logger.Warn("CreateBooking: event id=%d not found", req.EventID)
			return nil, ErrEventNotFound
		}
		uc.logger.Error("CreateBooking: failed to get event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
	}

	// 2. Получаем площадку
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("CreateBooking: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CreateBooking: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Получаем клиента (для расчета комиссии в ответе)
	client, err := uc.clientRepo.GetByID(ctx, event.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateBooking: client id=%d not found", event.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateBooking: failed to get client id=%d: %v", event.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 4. Проверяем вместимость. Вместимость проверяется всегда,
	// независимо от статуса создаваемого бронирования.
	if !venue.CanHost(event.RequiredCapacity) {
		uc.logger.Warn("CreateBooking: venue id=%d capacity=%d below required=%d",
			venue.ID, venue.Capacity, event.RequiredCapacity)
		return nil, fmt.Errorf("%w: venue holds %d, event needs %d",
			ErrCapacityExceeded, venue.Capacity, event.RequiredCapacity)
	}

	var result *domain.Booking

	// 5. Проверка конфликтов и запись выполняются атомарно:
	// мьютекс площадки сериализует конкурентов внутри процесса,
	// сериализуемая транзакция - между процессами.
	err = uc.venueLocker.Do(ctx, req.VenueID, func(lockCtx context.Context) error {
		return uc.txManager.DoSerializable(lockCtx, func(txCtx context.Context) error {
			// 5.1. Получаем открытые бронирования площадки на дату события (FOR UPDATE)
			filter := domain.VenueBookingsFilter{
				VenueID: req.VenueID,
				Date:    &event.Date,
			}

			bookings, err := uc.bookingRepo.ListWithFilter(txCtx, filter)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
				return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
			}

			// 5.2. Проверяем пересечение окна события с подтвержденными бронированиями
			conflict, err := schedule.HasConflict(req.VenueID, event.Date, event.StartTime, event.DurationHours, bookings)
			if err != nil {
				uc.logger.Warn("CreateBooking: conflict check failed: %v", err)
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}

			if conflict {
				uc.logger.Warn("CreateBooking: venue id=%d is busy on %s at %s",
					req.VenueID, event.Date.Format(domain.DateFormat), event.StartTime)
				return ErrSchedulingConflict
			}

			// 5.3. Создаем бронирование с денормализацией окна и названий
			booking := &domain.Booking{
				EventID:  event.ID,
				VenueID:  venue.ID,
				ClientID: client.ID,
				// Денормализация окна события
				BookingDate:   event.Date,
				StartTime:     event.StartTime,
				DurationHours: event.DurationHours,
				Status:        status,
				CreatedBy:     req.CreatedBy,
				// Денормализация названий для истории
				EventName: event.Name,
				VenueName: venue.Name,
			}

			created, err := uc.bookingRepo.Create(txCtx, booking)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to create booking: %v", err)
				return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
			}

			result = created
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d status=%s", result.ID, result.Status)

	financials := finance.Compute(venue, event, client).Rounded()

	return &Response{
		ID:            result.ID,
		EventID:       result.EventID,
		VenueID:       result.VenueID,
		ClientID:      result.ClientID,
		BookingDate:   result.BookingDate,
		StartTime:     result.StartTime,
		DurationHours: result.DurationHours,
		Status:        string(result.Status),
		CreatedBy:     result.CreatedBy,
		EventName:     result.EventName,
		VenueName:     result.VenueName,
		HirePrice:     financials.HirePrice,
		Commission:    financials.Commission,
		Total:         financials.Total,
		TotalDisplay:  money.FormatAmount(financials.Total),
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
