package models

import (
	"time"

	"github.com/avlko/GMA-BookingService/internal/domain"
)

// Request модели

// CreateVenueRequest запрос на создание площадки
type CreateVenueRequest struct {
	Name             string   `json:"name"`
	Capacity         int      `json:"capacity"`
	HirePricePerHour float64  `json:"hirePricePerHour"`
	Category         string   `json:"category"`   // INDOOR | OUTDOOR | CONVERTIBLE
	VenueTypes       []string `json:"venueTypes"` // ["Gig", "Festival"]
}

// UpdateVenueRequest запрос на обновление площадки
type UpdateVenueRequest struct {
	Name             *string  `json:"name,omitempty"`
	Capacity         *int     `json:"capacity,omitempty"`
	HirePricePerHour *float64 `json:"hirePricePerHour,omitempty"`
	Category         *string  `json:"category,omitempty"`
	VenueTypes       []string `json:"venueTypes,omitempty"`
}

// Response модели

// VenueResponse ответ с данными площадки
type VenueResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Capacity         int       `json:"capacity"`
	HirePricePerHour float64   `json:"hirePricePerHour"`
	Category         string    `json:"category"`
	VenueTypes       []string  `json:"venueTypes"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// VenueListResponse ответ со списком площадок
type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
}

// Методы конвертации

// FromDomainVenue конвертирует domain модель в DTO
func FromDomainVenue(v *domain.Venue) *VenueResponse {
	if v == nil {
		return nil
	}

	return &VenueResponse{
		ID:               v.ID,
		Name:             v.Name,
		Capacity:         v.Capacity,
		HirePricePerHour: v.HirePricePerHour,
		Category:         string(v.Category),
		VenueTypes:       v.VenueTypes,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

// FromDomainVenueList конвертирует список domain моделей в DTO
func FromDomainVenueList(venues []*domain.Venue) *VenueListResponse {
	resp := &VenueListResponse{
		Venues: make([]VenueResponse, 0, len(venues)),
	}

	for _, venue := range venues {
		if venueResp := FromDomainVenue(venue); venueResp != nil {
			resp.Venues = append(resp.Venues, *venueResp)
		}
	}

	return resp
}
