package audit

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

var ErrDisabled = errors.New("audit storage disabled")

type Query struct {
	BarberID string
	Action   string
	Entity   string
	From     *time.Time
	To       *time.Time
	Page     int
	Limit    int
}

// Normalize clamps paging to page >= 1 and 1..200 rows.
func (q *Query) Normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}
}

// List returns one page of a barber's audit rows, newest first, plus the
// total row count for the filter.
func (l *Logger) List(ctx context.Context, q Query) ([]models.AuditLog, int64, error) {
	if l.db == nil {
		return nil, 0, ErrDisabled
	}
	q.Normalize()

	tx := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("barber_id = ?", q.BarberID)

	if q.Action != "" {
		tx = tx.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		tx = tx.Where("entity = ?", q.Entity)
	}
	if q.From != nil {
		tx = tx.Where("created_at >= ?", *q.From)
	}
	if q.To != nil {
		tx = tx.Where("created_at < ?", q.To.Add(24*time.Hour))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := tx.
		Order("created_at DESC").
		Order("id DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
