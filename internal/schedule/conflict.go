// Package schedule проверка конфликтов временных окон бронирований.
// Окна полуоткрытые [start, start+duration): бронирования встык
// (одно заканчивается ровно когда начинается другое) не конфликтуют.
package schedule

import (
	"fmt"
	"time"

	"github.com/avlko/GMA-BookingService/internal/domain"
	"github.com/avlko/GMA-BookingService/pkg/types"
)

// HasConflict проверяет, пересекается ли запрошенное окно [startTime, startTime+durationHours)
// с каким-либо блокирующим (подтвержденным) бронированием площадки venueID на дату date.
//
// Блокируют окно только бронирования со статусом confirmed: pending и cancelled
// не мешают новым бронированиям. Площадка и дата должны совпадать точно,
// время сравнивается с точностью до минуты.
func HasConflict(
	venueID int64,
	date time.Time,
	startTime types.TimeString,
	durationHours int,
	bookings []*domain.Booking,
) (bool, error) {
	if durationHours <= 0 {
		return false, fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidInput, durationHours)
	}

	startMin, err := startTime.Minutes()
	if err != nil {
		return false, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	endMin := startMin + durationHours*60

	for _, booking := range bookings {
		// Пропускаем бронирования, не блокирующие окно
		if !booking.Blocks() {
			continue
		}

		if booking.VenueID != venueID {
			continue
		}

		if !sameDate(booking.BookingDate, date) {
			continue
		}

		bookingStart, err := booking.StartTime.Minutes()
		if err != nil {
			// Некорректное окно в хранилище пропускаем, оно не может конфликтовать
			continue
		}
		bookingEnd := bookingStart + booking.DurationMinutes()

		// Стандартное пересечение полуоткрытых интервалов:
		// [s1, e1) и [s2, e2) пересекаются тогда и только тогда, когда s1 < e2 && s2 < e1
		if startMin < bookingEnd && bookingStart < endMin {
			return true, nil
		}
	}

	return false, nil
}

// WithoutBooking возвращает список бронирований без бронирования с указанным id.
// Используется при обновлении: бронирование не должно конфликтовать само с собой.
func WithoutBooking(bookings []*domain.Booking, excludeID int64) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ID == excludeID {
			continue
		}
		result = append(result, b)
	}
	return result
}

// sameDate проверяет, что две даты относятся к одному и тому же дню
func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
