package repository

import (
	"context"
	"slices"
	"sync"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// MemoryRepository keeps every document in process. It backs the memory
// storage driver and the use case tests.
type MemoryRepository struct {
	mu sync.RWMutex

	users        map[string]models.User
	services     map[string]models.BarberService
	schedules    map[string]models.BarberSchedule
	unavailable  map[string]map[string]models.UnavailableDate
	appointments map[string]models.Appointment
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:        map[string]models.User{},
		services:     map[string]models.BarberService{},
		schedules:    map[string]models.BarberSchedule{},
		unavailable:  map[string]map[string]models.UnavailableDate{},
		appointments: map[string]models.Appointment{},
	}
}

func (r *MemoryRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) SaveUser(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[u.ID] = *u
	return nil
}

func (r *MemoryRepository) GetService(ctx context.Context, barberID, serviceID string) (*models.BarberService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.services[serviceID]
	if !ok || s.BarberID != barberID {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *MemoryRepository) ListServices(ctx context.Context, barberID string) ([]models.BarberService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := []models.BarberService{}
	for _, s := range r.services {
		if s.BarberID == barberID {
			list = append(list, s)
		}
	}
	slices.SortFunc(list, func(a, b models.BarberService) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})
	return list, nil
}

func (r *MemoryRepository) SaveService(ctx context.Context, s *models.BarberService) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.services[s.ID] = *s
	return nil
}

func (r *MemoryRepository) GetSchedule(ctx context.Context, barberID string) (*models.BarberSchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schedules[barberID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	s.Schedule = slices.Clone(s.Schedule)
	return &s, nil
}

func (r *MemoryRepository) SaveSchedule(ctx context.Context, s *models.BarberSchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *s
	cp.Schedule = slices.Clone(s.Schedule)
	r.schedules[s.BarberID] = cp
	return nil
}

func (r *MemoryRepository) ListUnavailableDates(ctx context.Context, barberID string) ([]models.UnavailableDate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := []models.UnavailableDate{}
	for _, d := range r.unavailable[barberID] {
		list = append(list, d)
	}
	slices.SortFunc(list, func(a, b models.UnavailableDate) int {
		switch {
		case a.Date < b.Date:
			return -1
		case a.Date > b.Date:
			return 1
		}
		return 0
	})
	return list, nil
}

func (r *MemoryRepository) AddUnavailableDate(ctx context.Context, d *models.UnavailableDate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dates, ok := r.unavailable[d.BarberID]
	if !ok {
		dates = map[string]models.UnavailableDate{}
		r.unavailable[d.BarberID] = dates
	}
	if existing, ok := dates[d.Date]; ok {
		existing.Reason = d.Reason
		dates[d.Date] = existing
		return nil
	}
	dates[d.Date] = *d
	return nil
}

func (r *MemoryRepository) RemoveUnavailableDate(ctx context.Context, barberID, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.unavailable[barberID][date]; !ok {
		return domain.ErrNotFound
	}
	delete(r.unavailable[barberID], date)
	return nil
}

// CreateAppointment checks for overlaps and inserts under one lock.
func (r *MemoryRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.appointments[ap.ID]; exists {
		return domain.ErrSlotTaken
	}

	sameDay := r.filter(func(a *models.Appointment) bool {
		return a.BarberID == ap.BarberID && a.Date == ap.Date
	})
	overlap, err := domain.OverlapsAny(ap, sameDay)
	if err != nil {
		return err
	}
	if overlap {
		return domain.ErrSlotTaken
	}

	r.appointments[ap.ID] = *ap
	return nil
}

func (r *MemoryRepository) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ap, nil
}

func (r *MemoryRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[ap.ID]; !ok {
		return domain.ErrNotFound
	}
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *MemoryRepository) ListAppointmentsForDay(ctx context.Context, barberID, date string) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(a *models.Appointment) bool {
		return a.BarberID == barberID && a.Date == date
	}), nil
}

func (r *MemoryRepository) ListAppointmentsByStatus(ctx context.Context, barberID string, statuses []string, from, to string) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(a *models.Appointment) bool {
		if a.BarberID != barberID || a.Date < from || a.Date > to {
			return false
		}
		return len(statuses) == 0 || slices.Contains(statuses, a.Status)
	}), nil
}

func (r *MemoryRepository) ListCustomerAppointments(ctx context.Context, customerID, from, to string) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(a *models.Appointment) bool {
		return a.CustomerID != nil && *a.CustomerID == customerID && a.Date >= from && a.Date <= to
	}), nil
}

// filter must be called with mu held.
func (r *MemoryRepository) filter(keep func(a *models.Appointment) bool) []models.Appointment {
	out := []models.Appointment{}
	for _, ap := range r.appointments {
		if keep(&ap) {
			out = append(out, ap)
		}
	}
	sortByStart(out)
	return out
}

var _ domain.Repository = (*MemoryRepository)(nil)
