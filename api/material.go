package api

import (
	"auracash/middleware"
	"auracash/service"

	"github.com/gin-gonic/gin"
)

const materialsPath = "/empreendedor"

// MaterialHandler entrepreneur supplies
type MaterialHandler struct {
	catalog *service.CatalogService
}

func NewMaterialHandler(catalog *service.CatalogService) *MaterialHandler {
	return &MaterialHandler{catalog: catalog}
}

// MaterialRequest new material
type MaterialRequest struct {
	Name     string      `form:"name" json:"name" example:"Farinha"`
	Unit     string      `form:"unit" json:"unit" example:"kg"`
	Quantity looseString `form:"quantity" json:"quantity" swaggertype:"string" example:"2.5"`
	UnitCost looseString `form:"unit_cost" json:"unit_cost" swaggertype:"string" example:"4.90"`
	Supplier string      `form:"supplier" json:"supplier" example:"Moinho"`
}

func (r *MaterialRequest) input() service.MaterialInput {
	return service.MaterialInput{
		Name:     r.Name,
		Unit:     r.Unit,
		Quantity: r.Quantity.String(),
		UnitCost: r.UnitCost.String(),
		Supplier: r.Supplier,
	}
}

// MaterialsView entrepreneur page payload
type MaterialsView struct {
	Materials []service.MaterialView `json:"materials"`
	Flash     *Flash                 `json:"flash,omitempty"`
}

// List materials with total cost
// @Summary Materials
// @Tags materials
// @Produce json
// @Success 200 {object} Response{data=MaterialsView}
// @Router /empreendedor [get]
func (h *MaterialHandler) List(c *gin.Context) {
	list, err := h.catalog.ListMaterials(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, MaterialsView{Materials: list, Flash: popFlash(c)})
}

// CreateForm adds a material from the page form
// @Summary Add material (form)
// @Tags materials
// @Accept x-www-form-urlencoded
// @Param name formData string true "name"
// @Param unit formData string false "unit"
// @Param quantity formData string true "quantity"
// @Param unit_cost formData string true "unit cost"
// @Param supplier formData string false "supplier"
// @Success 303 "redirect to /empreendedor"
// @Router /empreendedor [post]
func (h *MaterialHandler) CreateForm(c *gin.Context) {
	var req MaterialRequest
	submitForm(c, materialsPath, "Material salvo!", &req, func(userID uint) error {
		_, err := h.catalog.CreateMaterial(c.Request.Context(), userID, req.input())
		return err
	})
}

// Create adds a material
// @Summary Add material
// @Tags materials
// @Accept json
// @Produce json
// @Param request body MaterialRequest true "material"
// @Success 200 {object} Response{data=CreatedView}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /api/material [post]
func (h *MaterialHandler) Create(c *gin.Context) {
	var req MaterialRequest
	submitJSON(c, "Material salvo!", &req, func(userID uint) (uint, error) {
		return h.catalog.CreateMaterial(c.Request.Context(), userID, req.input())
	})
}
