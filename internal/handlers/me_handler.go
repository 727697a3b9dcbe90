package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/barber-queue/internal/usecase/appointment"
)

type MeHandler struct {
	profile *ucAppointment.Profile
}

func NewMeHandler(profile *ucAppointment.Profile) *MeHandler {
	return &MeHandler{profile: profile}
}

type ProfileRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
	Timezone string `json:"timezone" binding:"omitempty,timezone"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	u, err := h.profile.Get(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, u)
}

// UpdateMe creates the caller's profile on first use. The id and role
// always come from the token.
func (h *MeHandler) UpdateMe(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	actor := actorFrom(c)
	u, err := h.profile.Save(c.Request.Context(), ucAppointment.SaveProfileInput{
		ID:       actor.ID,
		Role:     actor.Role,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Timezone: req.Timezone,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, u)
}
