package scheduling

import (
	"sort"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// Pack assigns calendar columns to the appointments of one cabin and day.
//
// Appointments are ordered by start ascending, end descending, then ID. Each
// appointment's group is every appointment that directly overlaps it, itself
// included; the column index is its position in that group and the column
// count is the group size. Groups are pairwise, not transitive, so chained
// overlaps may get more columns than strictly needed.
func Pack(appointments []*domain.Appointment) []domain.LayoutSlot {
	sorted := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a != nil {
			sorted = append(sorted, a)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.StartsAt.Equal(b.StartsAt) {
			return a.StartsAt.Before(b.StartsAt)
		}
		if !a.EndsAt.Equal(b.EndsAt) {
			return a.EndsAt.After(b.EndsAt)
		}
		return a.ID < b.ID
	})

	slots := make([]domain.LayoutSlot, 0, len(sorted))
	for i, a := range sorted {
		index, count := 0, 0
		for j, b := range sorted {
			if i != j && !a.Interval().Overlaps(b.Interval()) {
				continue
			}
			if j == i {
				index = count
			}
			count++
		}
		slots = append(slots, domain.LayoutSlot{
			AppointmentID: a.ID,
			ColumnIndex:   index,
			ColumnCount:   count,
		})
	}
	return slots
}
