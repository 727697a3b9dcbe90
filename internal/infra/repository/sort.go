package repository

import (
	"cmp"
	"slices"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// sortByStart orders by date, then by clock time. Start labels are
// 12-hour strings, so storage ordering on the column is not usable.
func sortByStart(apps []models.Appointment) {
	slices.SortStableFunc(apps, func(a, b models.Appointment) int {
		if c := cmp.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		am, aerr := domain.TimeToMinutes(a.StartTime)
		bm, berr := domain.TimeToMinutes(b.StartTime)
		if aerr != nil || berr != nil {
			return cmp.Compare(a.StartTime, b.StartTime)
		}
		return cmp.Compare(am, bm)
	})
}
