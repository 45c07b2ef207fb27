package api

import (
	"auracash/middleware"
	"auracash/models"
	"auracash/service"

	"github.com/gin-gonic/gin"
)

const settingsPath = "/configuracoes"

// SettingsHandler profile and password
type SettingsHandler struct {
	auth     *service.AuthService
	sessions *middleware.SessionManager
}

func NewSettingsHandler(auth *service.AuthService, sessions *middleware.SessionManager) *SettingsHandler {
	return &SettingsHandler{auth: auth, sessions: sessions}
}

// ProfileRequest settings form
type ProfileRequest struct {
	Name   string      `form:"name" json:"name" example:"Ana"`
	Email  string      `form:"email" json:"email" example:"ana@example.com"`
	Income looseString `form:"income" json:"income" swaggertype:"string" example:"4500.00"`
}

// ChangePasswordRequest password form
type ChangePasswordRequest struct {
	OldPassword string `form:"old_password" json:"old_password"`
	NewPassword string `form:"new_password" json:"new_password"`
}

// SettingsView settings page payload
type SettingsView struct {
	User  *models.User `json:"user"`
	Flash *Flash       `json:"flash,omitempty"`
}

// Show current profile
// @Summary Settings
// @Tags settings
// @Produce json
// @Success 200 {object} Response{data=SettingsView}
// @Router /configuracoes [get]
func (h *SettingsHandler) Show(c *gin.Context) {
	user, err := h.auth.Profile(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, SettingsView{User: user, Flash: popFlash(c)})
}

// UpdateProfile saves name, email and income
// @Summary Update profile
// @Description Fails without changes when another account owns the email. On success the session is re-issued with the new name and email.
// @Tags settings
// @Accept x-www-form-urlencoded
// @Param name formData string true "display name"
// @Param email formData string true "email"
// @Param income formData string false "monthly income"
// @Success 303 "redirect to /configuracoes"
// @Router /configuracoes [post]
func (h *SettingsHandler) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	submitForm(c, settingsPath, "Perfil atualizado!", &req, func(userID uint) error {
		user, err := h.auth.UpdateProfile(c.Request.Context(), userID, service.ProfileInput{
			Name:   req.Name,
			Email:  req.Email,
			Income: req.Income.String(),
		})
		if err != nil {
			return err
		}
		return h.sessions.Issue(c, sessionOf(user))
	})
}

// ChangePassword replaces the password
// @Summary Change password
// @Tags settings
// @Accept x-www-form-urlencoded
// @Param old_password formData string true "current password"
// @Param new_password formData string true "new password, at least 6 characters"
// @Success 303 "redirect to /configuracoes"
// @Router /configuracoes/senha [post]
func (h *SettingsHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	submitForm(c, settingsPath, "Senha alterada!", &req, func(userID uint) error {
		return h.auth.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword)
	})
}
