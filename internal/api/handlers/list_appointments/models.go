package list_appointments

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров.
// from и to задаются в RFC3339 и ограничивают период пересечения.
func ToServiceRequest(q url.Values) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{}

	if v := q.Get("staffId"); v != "" {
		staffID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid staffId: %w", err)
		}
		req.StaffID = &staffID
	}

	if v := q.Get("cabinId"); v != "" {
		cabinID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid cabinId: %w", err)
		}
		req.CabinID = &cabinID
	}

	if v := q.Get("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, fmt.Errorf("invalid from: %w", err)
		}
		req.From = &from
	}

	if v := q.Get("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, fmt.Errorf("invalid to: %w", err)
		}
		req.To = &to
	}

	if v := q.Get("status"); v != "" {
		req.Status = &v
	}

	if v := q.Get("includeCancelled"); v != "" {
		includeCancelled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled: %w", err)
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
