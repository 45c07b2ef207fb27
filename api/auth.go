package api

import (
	"net/http"

	"auracash/middleware"
	"auracash/models"
	"auracash/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler login, registration and logout
type AuthHandler struct {
	auth     *service.AuthService
	sessions *middleware.SessionManager
}

func NewAuthHandler(auth *service.AuthService, sessions *middleware.SessionManager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// LoginRequest login form
type LoginRequest struct {
	Email    string `form:"email" json:"email" example:"ana@example.com"`
	Password string `form:"password" json:"password" example:"secret123"`
}

// RegisterRequest registration form
type RegisterRequest struct {
	Name     string      `form:"name" json:"name" example:"Ana"`
	Email    string      `form:"email" json:"email" example:"ana@example.com"`
	Password string      `form:"password" json:"password" example:"secret123"`
	Income   looseString `form:"income" json:"income" swaggertype:"string" example:"4500.00"`
}

// FormView payload of the public form pages
type FormView struct {
	Flash *Flash `json:"flash,omitempty"`
}

func sessionOf(u *models.User) middleware.Session {
	return middleware.Session{UserID: u.ID, Name: u.Name, Email: u.Email}
}

// Index sends visitors to the login form.
func (h *AuthHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, middleware.LoginPath)
}

// LoginPage login form view
// @Summary Login form
// @Tags auth
// @Produce json
// @Success 200 {object} Response{data=FormView}
// @Router /login [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	Success(c, FormView{Flash: popFlash(c)})
}

// Login authenticates and starts a session
// @Summary Log in
// @Description Verifies email and password, sets the session cookie and redirects to the dashboard.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param email formData string true "email"
// @Param password formData string true "password"
// @Success 303 "redirect to /dashboard"
// @Failure 303 "redirect to /login with a flash message"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithFlash(c, middleware.LoginPath, FlashError, msgBadCredentials)
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		formError(c, middleware.LoginPath, err)
		return
	}

	if err := h.sessions.Issue(c, sessionOf(user)); err != nil {
		serverError(c, err)
		return
	}
	redirectWithFlash(c, "/dashboard", FlashSuccess, "Login feito!")
}

// RegisterPage registration form view
// @Summary Registration form
// @Tags auth
// @Produce json
// @Success 200 {object} Response{data=FormView}
// @Router /cadastro [get]
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	Success(c, FormView{Flash: popFlash(c)})
}

// Register creates an account
// @Summary Register
// @Description Creates a user. The password is stored as a bcrypt hash.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param name formData string true "display name"
// @Param email formData string true "email"
// @Param password formData string true "password"
// @Param income formData string false "monthly income"
// @Success 303 "redirect to /login"
// @Failure 303 "redirect back to the form with a flash message"
// @Router /cadastro [post]
func (h *AuthHandler) Register(c *gin.Context) {
	back := c.Request.URL.Path
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithFlash(c, back, FlashError, "Dados inválidos")
		return
	}

	_, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Income:   req.Income.String(),
	})
	if err != nil {
		formError(c, back, err)
		return
	}
	redirectWithFlash(c, middleware.LoginPath, FlashSuccess, "Cadastro feito!")
}

// Logout ends the session
// @Summary Log out
// @Tags auth
// @Success 302 "redirect to /login"
// @Router /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	setFlash(c, FlashSuccess, "Saiu!")
	c.Redirect(http.StatusFound, middleware.LoginPath)
}
