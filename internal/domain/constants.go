package domain

// Business validation constants
const (
	MinEventDurationHours = 1
	MaxEventDurationHours = 24

	MinVenueCapacity = 1
	MaxVenueCapacity = 500000

	MinCommissionRate = 0.0
	MaxCommissionRate = 1.0

	MaxNameLength               = 200
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses статусы, блокирующие временное окно площадки.
// Используются при проверке конфликтов: pending и cancelled окно не занимают.
var BlockingStatuses = []BookingStatus{
	StatusConfirmed,
}

// OpenStatuses статусы незавершенных бронирований
var OpenStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
