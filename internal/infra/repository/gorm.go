package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// lock adds FOR UPDATE where the dialect supports it.
func lock(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func notFound(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return domain.Storage(op, err)
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *GormRepository) GetUser(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound("get user", err)
	}
	return &u, nil
}

func (r *GormRepository) SaveUser(
	ctx context.Context,
	u *models.User,
) error {
	return domain.Storage("save user", r.db.WithContext(ctx).Save(u).Error)
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *GormRepository) GetService(
	ctx context.Context,
	barberID string,
	serviceID string,
) (*models.BarberService, error) {

	var s models.BarberService
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", serviceID, barberID).
		First(&s).Error; err != nil {
		return nil, notFound("get service", err)
	}
	return &s, nil
}

func (r *GormRepository) ListServices(
	ctx context.Context,
	barberID string,
) ([]models.BarberService, error) {

	var list []models.BarberService
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("name ASC").
		Find(&list).Error; err != nil {
		return nil, domain.Storage("list services", err)
	}
	return list, nil
}

func (r *GormRepository) SaveService(
	ctx context.Context,
	s *models.BarberService,
) error {
	return domain.Storage("save service", r.db.WithContext(ctx).Save(s).Error)
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *GormRepository) GetSchedule(
	ctx context.Context,
	barberID string,
) (*models.BarberSchedule, error) {

	var s models.BarberSchedule
	if err := r.db.WithContext(ctx).First(&s, "barber_id = ?", barberID).Error; err != nil {
		return nil, notFound("get schedule", err)
	}
	return &s, nil
}

func (r *GormRepository) SaveSchedule(
	ctx context.Context,
	s *models.BarberSchedule,
) error {
	return domain.Storage("save schedule", r.db.WithContext(ctx).Save(s).Error)
}

func (r *GormRepository) ListUnavailableDates(
	ctx context.Context,
	barberID string,
) ([]models.UnavailableDate, error) {

	var list []models.UnavailableDate
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("date ASC").
		Find(&list).Error; err != nil {
		return nil, domain.Storage("list unavailable dates", err)
	}
	return list, nil
}

// AddUnavailableDate is an upsert: the date is the identity.
func (r *GormRepository) AddUnavailableDate(
	ctx context.Context,
	d *models.UnavailableDate,
) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "barber_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"reason"}),
		}).
		Create(d).Error
	return domain.Storage("add unavailable date", err)
}

func (r *GormRepository) RemoveUnavailableDate(
	ctx context.Context,
	barberID string,
	date string,
) error {
	res := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, date).
		Delete(&models.UnavailableDate{})
	if res.Error != nil {
		return domain.Storage("remove unavailable date", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

// CreateAppointment runs the overlap check and the insert in one
// transaction. On postgres the barber row is locked first so concurrent
// bookings for the same barber serialize.
func (r *GormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var barber models.User
		if err := lock(tx).
			Where("id = ?", ap.BarberID).
			Limit(1).
			Find(&barber).Error; err != nil {
			return err
		}

		var sameDay []models.Appointment
		if err := lock(tx).
			Where("barber_id = ? AND date = ? AND status <> ?", ap.BarberID, ap.Date, string(domain.StatusCancelled)).
			Find(&sameDay).Error; err != nil {
			return err
		}

		overlap, err := domain.OverlapsAny(ap, sameDay)
		if err != nil {
			return err
		}
		if overlap {
			return domain.ErrSlotTaken
		}

		return tx.Create(ap).Error
	})

	if httperr.IsExclusionConflict(err) {
		return domain.ErrSlotTaken
	}
	return domain.Storage("create appointment", err)
}

func (r *GormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, "id = ?", id).Error; err != nil {
		return nil, notFound("get appointment", err)
	}
	return &ap, nil
}

// UpdateAppointment overwrites the stored document; the last write wins.
func (r *GormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return domain.Storage("update appointment", r.db.WithContext(ctx).Save(ap).Error)
}

func (r *GormRepository) ListAppointmentsForDay(
	ctx context.Context,
	barberID string,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, date).
		Find(&apps).Error; err != nil {
		return nil, domain.Storage("list appointments for day", err)
	}

	sortByStart(apps)
	return apps, nil
}

func (r *GormRepository) ListAppointmentsByStatus(
	ctx context.Context,
	barberID string,
	statuses []string,
	from string,
	to string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Where("barber_id = ? AND date >= ? AND date <= ?", barberID, from, to)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}

	var apps []models.Appointment
	if err := q.Find(&apps).Error; err != nil {
		return nil, domain.Storage("list appointments by status", err)
	}

	sortByStart(apps)
	return apps, nil
}

func (r *GormRepository) ListCustomerAppointments(
	ctx context.Context,
	customerID string,
	from string,
	to string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("customer_id = ? AND date >= ? AND date <= ?", customerID, from, to).
		Find(&apps).Error; err != nil {
		return nil, domain.Storage("list customer appointments", err)
	}

	sortByStart(apps)
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*GormRepository)(nil)
