package api

import (
	"auracash/middleware"
	"auracash/models"
	"auracash/service"

	"github.com/gin-gonic/gin"
)

const categoriesPath = "/categorias"

// CategoryHandler user categories
type CategoryHandler struct {
	catalog *service.CatalogService
}

func NewCategoryHandler(catalog *service.CatalogService) *CategoryHandler {
	return &CategoryHandler{catalog: catalog}
}

// CategoryRequest new category
type CategoryRequest struct {
	Name string `form:"name" json:"name" example:"Pets"`
	Type string `form:"type" json:"type" enums:"income,expense" example:"expense"`
}

func (r *CategoryRequest) input() service.CategoryInput {
	return service.CategoryInput{Name: r.Name, Type: r.Type}
}

// CategoriesView categories page payload
type CategoriesView struct {
	Categories []models.Category `json:"categories"`
	Flash      *Flash            `json:"flash,omitempty"`
}

// List default and own categories
// @Summary Categories
// @Description Default categories plus those created by the signed-in user.
// @Tags categories
// @Produce json
// @Success 200 {object} Response{data=CategoriesView}
// @Router /categorias [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.catalog.ListCategories(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, CategoriesView{Categories: list, Flash: popFlash(c)})
}

// CreateForm adds a category from the page form
// @Summary Add category (form)
// @Tags categories
// @Accept x-www-form-urlencoded
// @Param name formData string true "name"
// @Param type formData string true "income or expense"
// @Success 303 "redirect to /categorias"
// @Router /categorias [post]
func (h *CategoryHandler) CreateForm(c *gin.Context) {
	var req CategoryRequest
	submitForm(c, categoriesPath, "Categoria criada!", &req, func(userID uint) error {
		_, err := h.catalog.CreateCategory(c.Request.Context(), userID, req.input())
		return err
	})
}

// Create adds a category
// @Summary Add category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body CategoryRequest true "category"
// @Success 200 {object} Response{data=CreatedView}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /api/categoria [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	submitJSON(c, "Categoria criada!", &req, func(userID uint) (uint, error) {
		return h.catalog.CreateCategory(c.Request.Context(), userID, req.input())
	})
}
