package update_booking

import (
	"time"

	"github.com/avlko/GMA-BookingService/internal/domain"
	updateBooking "github.com/avlko/GMA-BookingService/internal/usecase/update_booking"
	"github.com/avlko/GMA-BookingService/pkg/types"
)

// UpdateBookingRequest HTTP request model.
// Все поля опциональны: передаются только изменяемые.
type UpdateBookingRequest struct {
	VenueID       *int64  `json:"venueId,omitempty"`
	EventID       *int64  `json:"eventId,omitempty"`
	Date          *string `json:"date,omitempty"`      // "2026-06-15"
	StartTime     *string `json:"startTime,omitempty"` // "20:00"
	DurationHours *int    `json:"durationHours,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64  `json:"id"`
	EventID       int64  `json:"eventId"`
	VenueID       int64  `json:"venueId"`
	ClientID      int64  `json:"clientId"`
	BookingDate   string `json:"bookingDate"`
	StartTime     string `json:"startTime"`
	DurationHours int    `json:"durationHours"`
	Status        string `json:"status"`

	EventName string `json:"eventName"`
	VenueName string `json:"venueName"`

	HirePrice    float64 `json:"hirePrice"`
	Commission   float64 `json:"commission"`
	Total        float64 `json:"total"`
	TotalDisplay string  `json:"totalDisplay"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		BookingID:     bookingID,
		VenueID:       r.VenueID,
		EventID:       r.EventID,
		DurationHours: r.DurationHours,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		startTime := types.TimeString(*r.StartTime)
		if err := startTime.Validate(); err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		EventID:       resp.EventID,
		VenueID:       resp.VenueID,
		ClientID:      resp.ClientID,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		DurationHours: resp.DurationHours,
		Status:        resp.Status,
		EventName:     resp.EventName,
		VenueName:     resp.VenueName,
		HirePrice:     resp.HirePrice,
		Commission:    resp.Commission,
		Total:         resp.Total,
		TotalDisplay:  resp.TotalDisplay,
	}
}
