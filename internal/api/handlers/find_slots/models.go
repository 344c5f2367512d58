package find_slots

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	findSlots "github.com/m04kA/SMC-SalonScheduler/internal/usecase/find_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	ServiceID       int64          `json:"serviceId"`
	DurationMinutes int            `json:"durationMinutes"`
	From            string         `json:"from"` // "2025-10-15"
	Days            int            `json:"days"`
	Slots           []SlotResponse `json:"slots"`
}

// SlotResponse один свободный слот
type SlotResponse struct {
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	StartsAt  string `json:"startsAt"`
	EndsAt    string `json:"endsAt"`
	StaffID   int64  `json:"staffId"`
	StaffName string `json:"staffName"`
	CabinID   int64  `json:"cabinId"`
}

// parseQuery разбирает query параметры поиска
func parseQuery(q url.Values) (*findSlots.Request, error) {
	req := &findSlots.Request{}

	serviceID, err := strconv.ParseInt(q.Get("serviceId"), 10, 64)
	if err != nil {
		return nil, err
	}
	req.ServiceID = serviceID

	if v := q.Get("staffId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.StaffID = &id
	}

	if v := q.Get("cabinId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CabinID = &id
	}

	if v := q.Get("date"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	if v := q.Get("days"); v != "" {
		if req.Days, err = strconv.Atoi(v); err != nil {
			return nil, err
		}
	}

	if v := q.Get("limit"); v != "" {
		if req.Limit, err = strconv.Atoi(v); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findSlots.Response) *SlotsResponse {
	out := &SlotsResponse{
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		From:            resp.From.Format(domain.DateFormat),
		Days:            resp.Days,
		Slots:           make([]SlotResponse, 0, len(resp.Slots)),
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			Date:      s.Date.Format(domain.DateFormat),
			StartTime: s.StartTime.String(),
			StartsAt:  s.StartsAt.Format(time.RFC3339),
			EndsAt:    s.EndsAt.Format(time.RFC3339),
			StaffID:   s.StaffID,
			StaffName: s.StaffName,
			CabinID:   s.CabinID,
		})
	}
	return out
}
