package create_booking

import (
	"time"

	"github.com/avlko/GMA-BookingService/internal/domain"
	createBooking "github.com/avlko/GMA-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	EventID int64 `json:"eventId"`
	VenueID int64 `json:"venueId"`
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
	CreatedBy     string `json:"createdBy"`

	EventName string `json:"eventName"`
	VenueName string `json:"venueName"`

	HirePrice    float64 `json:"hirePrice"`
	Commission   float64 `json:"commission"`
	Total        float64 `json:"total"`
	TotalDisplay string  `json:"totalDisplay"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(createdBy string) *createBooking.Request {
	return &createBooking.Request{
		EventID:   r.EventID,
		VenueID:   r.VenueID,
		CreatedBy: createdBy,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		EventID:       resp.EventID,
		VenueID:       resp.VenueID,
		ClientID:      resp.ClientID,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		DurationHours: resp.DurationHours,
		Status:        resp.Status,
		CreatedBy:     resp.CreatedBy,
		EventName:     resp.EventName,
		VenueName:     resp.VenueName,
		HirePrice:     resp.HirePrice,
		Commission:    resp.Commission,
		Total:         resp.Total,
		TotalDisplay:  resp.TotalDisplay,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
