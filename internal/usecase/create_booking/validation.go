package create_booking

import (
	"fmt"
	"strings"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.EventID <= 0 {
		return fmt.Errorf("%w: event id must be positive", ErrInvalidInput)
	}

	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venue id must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CreatedBy) == "" {
		return fmt.Errorf("%w: createdBy is required", ErrInvalidInput)
	}

	return nil
}
