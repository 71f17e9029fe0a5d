package models

import (
	"errors"
	"time"

	"github.com/avlko/GMA-BookingService/internal/domain"
	"github.com/avlko/GMA-BookingService/pkg/types"
)

var (
	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time format, expected HH:MM")
)

// Request модели

// CreateEventRequest запрос на создание события
type CreateEventRequest struct {
	Name             string `json:"name"`
	Artist           string `json:"artist"`
	Date             string `json:"date"`      // "2026-06-15"
	StartTime        string `json:"startTime"` // "20:00"
	DurationHours    int    `json:"durationHours"`
	RequiredCapacity int    `json:"requiredCapacity"`
	EventType        string `json:"eventType"` // "Gig", "Festival", ...
	Category         string `json:"category"`  // INDOOR | OUTDOOR | CONVERTIBLE
	ClientID         int64  `json:"clientId"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateEventRequest) ToDomain() (*domain.Event, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	startTime := types.TimeString(r.StartTime)
	if err := startTime.Validate(); err != nil {
		return nil, ErrInvalidTime
	}

	return &domain.Event{
		Name:             r.Name,
		Artist:           r.Artist,
		Date:             date,
		StartTime:        startTime,
		DurationHours:    r.DurationHours,
		RequiredCapacity: r.RequiredCapacity,
		EventType:        r.EventType,
		Category:         domain.VenueCategory(r.Category),
		ClientID:         r.ClientID,
	}, nil
}

// UpdateEventRequest запрос на обновление события
type UpdateEventRequest struct {
	Name             *string `json:"name,omitempty"`
	Artist           *string `json:"artist,omitempty"`
	Date             *string `json:"date,omitempty"`
	StartTime        *string `json:"startTime,omitempty"`
	DurationHours    *int    `json:"durationHours,omitempty"`
	RequiredCapacity *int    `json:"requiredCapacity,omitempty"`
	EventType        *string `json:"eventType,omitempty"`
	Category         *string `json:"category,omitempty"`
}

// TouchesSchedule возвращает true, если запрос меняет окно события.
// Такие изменения запрещены для забронированных событий.
func (r *UpdateEventRequest) TouchesSchedule() bool {
	return r.Date != nil || r.StartTime != nil || r.DurationHours != nil
}

// Response модели

// EventResponse ответ с данными события
type EventResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Artist           string    `json:"artist"`
	Date             string    `json:"date"`
	StartTime        string    `json:"startTime"`
	DurationHours    int       `json:"durationHours"`
	RequiredCapacity int       `json:"requiredCapacity"`
	EventType        string    `json:"eventType"`
	Category         string    `json:"category"`
	ClientID         int64     `json:"clientId"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// EventListResponse ответ со списком событий
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// Методы конвертации

// FromDomainEvent конвертирует domain модель в DTO
func FromDomainEvent(e *domain.Event) *EventResponse {
	if e == nil {
		return nil
	}

	return &EventResponse{
		ID:               e.ID,
		Name:             e.Name,
		Artist:           e.Artist,
		Date:             e.Date.Format(domain.DateFormat),
		StartTime:        e.StartTime.String(),
		DurationHours:    e.DurationHours,
		RequiredCapacity: e.RequiredCapacity,
		EventType:        e.EventType,
		Category:         string(e.Category),
		ClientID:         e.ClientID,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

// FromDomainEventList конвертирует список domain моделей в DTO
func FromDomainEventList(events []*domain.Event) *EventListResponse {
	resp := &EventListResponse{
		Events: make([]EventResponse, 0, len(events)),
	}

	for _, event := range events {
		if eventResp := FromDomainEvent(event); eventResp != nil {
			resp.Events = append(resp.Events, *eventResp)
		}
	}

	return resp
}
