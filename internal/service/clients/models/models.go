package models

import (
	"time"

	"github.com/avlko/GMA-BookingService/internal/domain"
	"github.com/avlko/GMA-BookingService/pkg/money"
)

// Request модели

// CreateClientRequest запрос на создание клиента
type CreateClientRequest struct {
	Name           string  `json:"name"`
	Contact        string  `json:"contact"`
	CommissionRate float64 `json:"commissionRate"` // Доля, например 0.10
}

// UpdateClientRequest запрос на обновление клиента
type UpdateClientRequest struct {
	Name           *string  `json:"name,omitempty"`
	Contact        *string  `json:"contact,omitempty"`
	CommissionRate *float64 `json:"commissionRate,omitempty"`
}

// Response модели

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID                    int64     `json:"id"`
	Name                  string    `json:"name"`
	Contact               string    `json:"contact"`
	CommissionRate        float64   `json:"commissionRate"`
	CommissionRateDisplay string    `json:"commissionRateDisplay"` // "10%"
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// ClientListResponse ответ со списком клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ClientSummaryResponse сводка по клиенту.
// Всегда пересчитывается из подтвержденных бронирований.
type ClientSummaryResponse struct {
	ClientID     int64   `json:"clientId"`
	Name         string  `json:"name"`
	JobCount     int     `json:"jobCount"`
	JobsDisplay  string  `json:"jobsDisplay"` // "3 bookings"
	TotalSpend   float64 `json:"totalSpend"`
	TotalDisplay string  `json:"totalDisplay"` // "$330.00"
}

// Методы конвертации

// FromDomainClient конвертирует domain модель в DTO
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}

	return &ClientResponse{
		ID:                    c.ID,
		Name:                  c.Name,
		Contact:               c.Contact,
		CommissionRate:        c.CommissionRate,
		CommissionRateDisplay: money.FormatRate(c.CommissionRate),
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

// FromDomainClientList конвертирует список domain моделей в DTO
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	resp := &ClientListResponse{
		Clients: make([]ClientResponse, 0, len(clients)),
	}

	for _, client := range clients {
		if clientResp := FromDomainClient(client); clientResp != nil {
			resp.Clients = append(resp.Clients, *clientResp)
		}
	}

	return resp
}

// FromDomainSummary конвертирует domain сводку в DTO
func FromDomainSummary(s *domain.ClientSummary) *ClientSummaryResponse {
	if s == nil {
		return nil
	}

	return &ClientSummaryResponse{
		ClientID:     s.ClientID,
		Name:         s.Name,
		JobCount:     s.JobCount,
		JobsDisplay:  money.FormatQuantity(s.JobCount, "booking"),
		TotalSpend:   s.TotalSpend,
		TotalDisplay: s.TotalDisplay,
	}
}
