package update_booking

import "fmt"

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	if req.VenueID == nil && req.EventID == nil && req.Date == nil && req.StartTime == nil && req.DurationHours == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.VenueID != nil && *req.VenueID <= 0 {
		return fmt.Errorf("%w: venue id must be positive", ErrInvalidInput)
	}

	if req.EventID != nil && *req.EventID <= 0 {
		return fmt.Errorf("%w: event id must be positive", ErrInvalidInput)
	}

	if req.DurationHours != nil && *req.DurationHours <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
		}
	}

	return nil
}
