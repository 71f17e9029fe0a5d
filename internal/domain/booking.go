package domain

import (
	"time"

	"github.com/avlko/GMA-BookingService/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true if the status is one of the known values
func (s BookingStatus) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// Booking represents the assignment of an event to a venue for a client.
// Бронирование держит только id связанных сущностей (не живые ссылки);
// Venue/Event/Client разрешаются через репозитории.
type Booking struct {
	ID       int64
	EventID  int64
	VenueID  int64
	ClientID int64

	// Денормализованное окно бронирования (копия из события на момент создания).
	// Проверка конфликтов работает по этим полям, а не по живому событию.
	BookingDate   time.Time
	StartTime     types.TimeString
	DurationHours int

	Status    BookingStatus
	CreatedBy string // Сотрудник, создавший бронирование (для аудита)

	// Денормализованные данные для истории
	EventName string
	VenueName string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the booking is confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Blocks returns true if the booking blocks its venue time window.
// Только подтвержденные бронирования блокируют окно; pending и cancelled - нет.
func (b *Booking) Blocks() bool {
	return b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the booking can transition to confirmed.
// Разрешен только переход pending -> confirmed.
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeCancelled returns true if the booking can transition to cancelled.
// Cancelled - терминальный статус, повторная отмена запрещена.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeUpdated returns true if the booking slot can be replaced
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// DurationMinutes returns the booking window duration in minutes
func (b *Booking) DurationMinutes() int {
	return b.DurationHours * 60
}

// VenueBookingsFilter фильтр для получения бронирований площадки
type VenueBookingsFilter struct {
	VenueID       int64          // Обязательный параметр
	Date          *time.Time     // Фильтр по дате (опционально, если nil - все даты)
	Status        *BookingStatus // Фильтр по статусу (опционально)
	ExcludeID     *int64         // Исключить бронирование по id (для update, чтобы не конфликтовать с собой)
	IncludeClosed bool           // Включать ли отмененные бронирования
}
