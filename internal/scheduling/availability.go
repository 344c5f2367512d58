package scheduling

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// FinderConfig tunables of the availability search
type FinderConfig struct {
	Location     *time.Location
	StepMinutes  int
	DefaultOpen  types.TimeString // Часы работы салона для сотрудников без графика
	DefaultClose types.TimeString
}

// Finder enumerates free (staff, cabin) start times
type Finder struct {
	cfg FinderConfig
}

// NewFinder validates the configuration and creates a Finder
func NewFinder(cfg FinderConfig) (*Finder, error) {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.StepMinutes <= 0 {
		return nil, ErrInvalidStep
	}
	if cfg.DefaultOpen.IsZero() || cfg.DefaultClose.IsZero() || !cfg.DefaultOpen.IsBefore(cfg.DefaultClose) {
		return nil, ErrInvalidWorkingHours
	}
	return &Finder{cfg: cfg}, nil
}

// SearchRequest parameters of one search
type SearchRequest struct {
	DurationMinutes int
	StaffID         *int64    // Фильтр по сотруднику (nil: все)
	CabinID         *int64    // Фильтр по кабинету (nil: первый свободный)
	StartDate       time.Time // Первый день поиска, учитывается только календарная дата
	HorizonDays     int
	Limit           int       // Максимум результатов (0: без ограничения)
	NotBefore       time.Time // Слоты, начинающиеся раньше, не предлагаются (zero: без ограничения)
}

// Inventory snapshot of the data the search runs over
type Inventory struct {
	Staff        []domain.Staff
	Cabins       []domain.Cabin
	Shifts       ShiftLookup
	Appointments []*domain.Appointment
}

type dayCandidate struct {
	slot      domain.AvailableSlot
	staffRank int
}

// FindSlots returns free slots ordered by date, time and staff name.
// Unknown or inactive staff and cabin filters give an empty result.
func (f *Finder) FindSlots(req SearchRequest, inv Inventory) ([]domain.AvailableSlot, error) {
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if req.HorizonDays <= 0 {
		return nil, ErrInvalidHorizon
	}

	result := make([]domain.AvailableSlot, 0)

	// Шаг 1: кандидаты сотрудников и кабинетов
	staff := resolveStaff(inv.Staff, req.StaffID)
	cabins := resolveCabins(inv.Cabins, req.CabinID)
	if len(staff) == 0 || len(cabins) == 0 {
		return result, nil
	}

	byStaff := make(map[int64][]*domain.Appointment)
	byCabin := make(map[int64][]*domain.Appointment)
	for _, a := range inv.Appointments {
		if a == nil || !a.OccupiesSlot() {
			continue
		}
		byStaff[a.StaffID] = append(byStaff[a.StaffID], a)
		byCabin[a.CabinID] = append(byCabin[a.CabinID], a)
	}

	duration := time.Duration(req.DurationMinutes) * time.Minute
	first := civilDate(req.StartDate, f.cfg.Location)

	// Шаг 2: перебор дней горизонта
	for day := 0; day < req.HorizonDays; day++ {
		date := first.AddDate(0, 0, day)
		candidates := make([]dayCandidate, 0)

		for rank, s := range staff {
			open, closeTime, ok := f.workingWindow(s.ID, date, inv.Shifts)
			if !ok {
				continue
			}

			// Шаг 3: старты с фиксированным шагом, запись целиком внутри окна
			for startMin := open; startMin+req.DurationMinutes <= closeTime; startMin += f.cfg.StepMinutes {
				startsAt := time.Date(date.Year(), date.Month(), date.Day(), 0, startMin, 0, 0, f.cfg.Location)
				if !req.NotBefore.IsZero() && startsAt.Before(req.NotBefore) {
					continue
				}
				interval := domain.TimeInterval{Start: startsAt, End: startsAt.Add(duration)}

				// Шаг 4: пересечение с записями сотрудника
				if overlapsAny(interval, byStaff[s.ID]) {
					continue
				}

				// Шаг 5: подбор свободного кабинета
				cabinID, ok := pickCabin(interval, cabins, byCabin)
				if !ok {
					continue
				}

				startTime, err := types.NewTimeStringFromMinutes(startMin)
				if err != nil {
					return nil, err
				}
				candidates = append(candidates, dayCandidate{
					slot: domain.AvailableSlot{
						Date:      date,
						StartTime: startTime,
						StartsAt:  interval.Start,
						EndsAt:    interval.End,
						StaffID:   s.ID,
						CabinID:   cabinID,
					},
					staffRank: rank,
				})
			}
		}

		// Шаг 6: хронологический порядок, при равенстве по имени сотрудника
		sort.SliceStable(candidates, func(i, j int) bool {
			if !candidates[i].slot.StartsAt.Equal(candidates[j].slot.StartsAt) {
				return candidates[i].slot.StartsAt.Before(candidates[j].slot.StartsAt)
			}
			return candidates[i].staffRank < candidates[j].staffRank
		})

		for _, c := range candidates {
			result = append(result, c.slot)
			if req.Limit > 0 && len(result) >= req.Limit {
				return result, nil
			}
		}
	}

	return result, nil
}

// workingWindow returns the usable minute-of-day window of the staff member on date
func (f *Finder) workingWindow(staffID int64, date time.Time, shifts ShiftLookup) (int, int, bool) {
	if shifts != nil {
		if window, ok := shifts.ShiftFor(staffID, date); ok {
			if !window.IsWorkingDay || window.Validate() != nil {
				return 0, 0, false
			}
			return window.Start.Minutes(), window.End.Minutes(), true
		}
		if shifts.IsManaged(staffID) {
			return 0, 0, false
		}
	}
	return f.cfg.DefaultOpen.Minutes(), f.cfg.DefaultClose.Minutes(), true
}

func resolveStaff(all []domain.Staff, filter *int64) []domain.Staff {
	staff := make([]domain.Staff, 0, len(all))
	for _, s := range all {
		if !s.Active || (filter != nil && s.ID != *filter) {
			continue
		}
		staff = append(staff, s)
	}
	sort.SliceStable(staff, func(i, j int) bool {
		if staff[i].Name != staff[j].Name {
			return staff[i].Name < staff[j].Name
		}
		return staff[i].ID < staff[j].ID
	})
	return staff
}

func resolveCabins(all []domain.Cabin, filter *int64) []domain.Cabin {
	cabins := make([]domain.Cabin, 0, len(all))
	for _, c := range all {
		if !c.Active || (filter != nil && c.ID != *filter) {
			continue
		}
		cabins = append(cabins, c)
	}
	sort.SliceStable(cabins, func(i, j int) bool {
		return cabins[i].ID < cabins[j].ID
	})
	return cabins
}

func pickCabin(interval domain.TimeInterval, cabins []domain.Cabin, byCabin map[int64][]*domain.Appointment) (int64, bool) {
	for _, c := range cabins {
		if !overlapsAny(interval, byCabin[c.ID]) {
			return c.ID, true
		}
	}
	return 0, false
}

func overlapsAny(interval domain.TimeInterval, appointments []*domain.Appointment) bool {
	for _, a := range appointments {
		if a.Interval().Overlaps(interval) {
			return true
		}
	}
	return false
}
