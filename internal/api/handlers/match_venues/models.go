package match_venues

import (
	matchVenues "github.com/avlko/GMA-BookingService/internal/usecase/match_venues"
)

// MatchResponse одна площадка в ранжированном списке
type MatchResponse struct {
	VenueID   int64  `json:"venueId"`
	VenueName string `json:"venueName"`
	Score     int    `json:"score"`

	Available  bool `json:"available"`
	CapacityOK bool `json:"capacityOk"`
	CategoryOK bool `json:"categoryOk"`
	TypeOK     bool `json:"typeOk"`

	PerfectMatch bool `json:"perfectMatch"`

	HirePrice    float64 `json:"hirePrice"`
	Commission   float64 `json:"commission"`
	Total        float64 `json:"total"`
	TotalDisplay string  `json:"totalDisplay"`
}

// MatchListResponse ранжированный список площадок для события
type MatchListResponse struct {
	EventID   int64           `json:"eventId"`
	EventName string          `json:"eventName"`
	Matches   []MatchResponse `json:"matches"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *matchVenues.Response) *MatchListResponse {
	out := &MatchListResponse{
		EventID:   resp.EventID,
		EventName: resp.EventName,
		Matches:   make([]MatchResponse, len(resp.Matches)),
	}

	for i, m := range resp.Matches {
		out.Matches[i] = MatchResponse{
			VenueID:      m.VenueID,
			VenueName:    m.VenueName,
			Score:        m.Score,
			Available:    m.Available,
			CapacityOK:   m.CapacityOK,
			CategoryOK:   m.CategoryOK,
			TypeOK:       m.TypeOK,
			PerfectMatch: m.PerfectMatch,
			HirePrice:    m.HirePrice,
			Commission:   m.Commission,
			Total:        m.Total,
			TotalDisplay: m.TotalDisplay,
		}
	}

	return out
}
