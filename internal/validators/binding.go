package validators

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

var once sync.Once

// Register adds the custom binding tags to gin's validator:
//
//	timelabel  "HH:MM AM" / "HH:MM PM"
//	isodate    YYYY-MM-DD calendar date
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("timelabel", timeLabel)
		_ = v.RegisterValidation("isodate", isoDate)
	})
}

func timeLabel(fl validator.FieldLevel) bool {
	_, err := domain.TimeToMinutes(fl.Field().String())
	return err == nil
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(timezone.DateLayout, fl.Field().String())
	return err == nil
}
