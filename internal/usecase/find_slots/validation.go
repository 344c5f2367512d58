package find_slots

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}

	if req.CabinID != nil && *req.CabinID <= 0 {
		return fmt.Errorf("%w: cabinId must be positive", ErrInvalidInput)
	}

	if req.Days < 0 {
		return fmt.Errorf("%w: days must not be negative", ErrInvalidInput)
	}

	if req.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}

	return nil
}

// clamp ограничивает запрошенное значение сверху; 0 означает значение по умолчанию
func clamp(requested, fallback, max int) int {
	if requested == 0 {
		requested = fallback
	}
	if requested > max {
		return max
	}
	return requested
}
