package domain

import "time"

// Client represents an agency client who owns events and pays commission
type Client struct {
	ID      int64
	Name    string
	Contact string

	// Доля комиссии агентства, всегда в [0, 1], например 0.10
	CommissionRate float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasValidCommissionRate returns true if the rate is within [0, 1]
func (c *Client) HasValidCommissionRate() bool {
	return c.CommissionRate >= 0 && c.CommissionRate <= 1
}

// ClientSummary агрегированная статистика клиента.
// Всегда пересчитывается из бронирований, никогда не хранится.
type ClientSummary struct {
	ClientID     int64
	Name         string
	JobCount     int     // Количество подтвержденных бронирований
	TotalSpend   float64 // Суммарные затраты (hire + commission) с полной точностью
	TotalDisplay string  // Отформатированная сумма для отображения, "$330.00"
}
