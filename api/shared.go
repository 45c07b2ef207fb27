package api

import (
	"auracash/middleware"
	"auracash/models"
	"auracash/service"

	"github.com/gin-gonic/gin"
)

const sharedPath = "/compartilhada"

// SharedAccountHandler shared accounts
type SharedAccountHandler struct {
	catalog *service.CatalogService
}

func NewSharedAccountHandler(catalog *service.CatalogService) *SharedAccountHandler {
	return &SharedAccountHandler{catalog: catalog}
}

// SharedAccountRequest new shared account
type SharedAccountRequest struct {
	Name        string `form:"name" json:"name" example:"Casa"`
	Description string `form:"description" json:"description" example:"Contas da casa"`
}

func (r *SharedAccountRequest) input() service.SharedAccountInput {
	return service.SharedAccountInput{Name: r.Name, Description: r.Description}
}

// SharedAccountsView shared accounts page payload
type SharedAccountsView struct {
	Accounts []models.SharedAccount `json:"accounts"`
	Flash    *Flash                 `json:"flash,omitempty"`
}

// List shared accounts the user belongs to
// @Summary Shared accounts
// @Tags shared
// @Produce json
// @Success 200 {object} Response{data=SharedAccountsView}
// @Router /compartilhada [get]
func (h *SharedAccountHandler) List(c *gin.Context) {
	list, err := h.catalog.ListSharedAccounts(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, SharedAccountsView{Accounts: list, Flash: popFlash(c)})
}

// CreateForm creates a shared account from the page form
// @Summary Add shared account (form)
// @Tags shared
// @Accept x-www-form-urlencoded
// @Param name formData string true "name"
// @Param description formData string false "description"
// @Success 303 "redirect to /compartilhada"
// @Router /compartilhada [post]
func (h *SharedAccountHandler) CreateForm(c *gin.Context) {
	var req SharedAccountRequest
	submitForm(c, sharedPath, "Conta compartilhada criada!", &req, func(userID uint) error {
		_, err := h.catalog.CreateSharedAccount(c.Request.Context(), userID, req.input())
		return err
	})
}

// Create creates a shared account owned by the signed-in user
// @Summary Add shared account
// @Tags shared
// @Accept json
// @Produce json
// @Param request body SharedAccountRequest true "shared account"
// @Success 200 {object} Response{data=CreatedView}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /api/compartilhada [post]
func (h *SharedAccountHandler) Create(c *gin.Context) {
	var req SharedAccountRequest
	submitJSON(c, "Conta compartilhada criada!", &req, func(userID uint) (uint, error) {
		return h.catalog.CreateSharedAccount(c.Request.Context(), userID, req.input())
	})
}
