package validators

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type slotRequest struct {
	Date      string `binding:"required,isodate"`
	StartTime string `binding:"required,timelabel"`
	Timezone  string `binding:"omitempty,timezone"`
}

func TestRegisteredTags(t *testing.T) {
	Register()
	Register()

	tests := []struct {
		name  string
		req   slotRequest
		valid bool
	}{
		{name: "valid", req: slotRequest{Date: "2026-10-12", StartTime: "09:15 AM", Timezone: "UTC"}, valid: true},
		{name: "lowercase meridiem", req: slotRequest{Date: "2026-10-12", StartTime: "09:15 pm"}, valid: true},
		{name: "24h clock", req: slotRequest{Date: "2026-10-12", StartTime: "21:15"}, valid: false},
		{name: "bad date", req: slotRequest{Date: "12/10/2026", StartTime: "09:15 AM"}, valid: false},
		{name: "unknown zone", req: slotRequest{Date: "2026-10-12", StartTime: "09:15 AM", Timezone: "Moon/Base"}, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
