package audit

import (
	"encoding/json"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-queue/internal/events"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// Logger persists appointment events as audit rows. Without a database it
// only writes them to the process log.
type Logger struct {
	db     *gorm.DB
	logger *zerolog.Logger
}

func New(db *gorm.DB, logger *zerolog.Logger) *Logger {
	return &Logger{db: db, logger: logger}
}

func (l *Logger) Log(
	barberID string,
	actorID *string,
	action string,
	entity string,
	entityID *string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	if l.db == nil {
		l.logger.Info().
			Str("barber_id", barberID).
			Str("action", action).
			Str("entity", entity).
			RawJSON("metadata", rawOrNull(metaJSON)).
			Msg("audit")
		return nil
	}

	row := models.AuditLog{
		BarberID: barberID,
		ActorID:  actorID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&row).Error
}

// Subscribe registers the logger on every appointment topic.
func (l *Logger) Subscribe(bus *events.Bus) {
	for _, topic := range events.Topics {
		bus.Subscribe(topic, l.handle)
	}
}

func (l *Logger) handle(ev *events.Event) error {
	var p events.AppointmentPayload
	if err := ev.Decode(&p); err != nil {
		return err
	}

	id := p.AppointmentID
	return l.Log(p.BarberID, p.ActorID, ev.Topic, "appointment", &id, p)
}

func rawOrNull(s string) []byte {
	if s == "" {
		return []byte("null")
	}
	return []byte(s)
}
