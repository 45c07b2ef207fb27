package api

import (
	"auracash/middleware"
	"auracash/service"

	"github.com/gin-gonic/gin"
)

const goalsPath = "/metas"

// GoalHandler savings goals
type GoalHandler struct {
	catalog *service.CatalogService
}

func NewGoalHandler(catalog *service.CatalogService) *GoalHandler {
	return &GoalHandler{catalog: catalog}
}

// GoalRequest new goal
type GoalRequest struct {
	Name          string      `form:"name" json:"name" example:"Viagem"`
	TargetAmount  looseString `form:"target_amount" json:"target_amount" swaggertype:"string" example:"5000"`
	CurrentAmount looseString `form:"current_amount" json:"current_amount" swaggertype:"string" example:"1200"`
	StartDate     string      `form:"start_date" json:"start_date" example:"2024-01-01"`
	EndDate       string      `form:"end_date" json:"end_date" example:"2024-12-31"`
	CategoryID    looseString `form:"category_id" json:"category_id" swaggertype:"string"`
}

func (r *GoalRequest) input() (service.GoalInput, error) {
	categoryID, err := optionalID("category_id", r.CategoryID)
	if err != nil {
		return service.GoalInput{}, err
	}
	return service.GoalInput{
		Name:          r.Name,
		TargetAmount:  r.TargetAmount.String(),
		CurrentAmount: r.CurrentAmount.String(),
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		CategoryID:    categoryID,
	}, nil
}

func (h *GoalHandler) create(c *gin.Context, userID uint, req *GoalRequest) (uint, error) {
	in, err := req.input()
	if err != nil {
		return 0, err
	}
	return h.catalog.CreateGoal(c.Request.Context(), userID, in)
}

// GoalsView goals page payload
type GoalsView struct {
	Goals []service.GoalView `json:"goals"`
	Flash *Flash             `json:"flash,omitempty"`
}

// List goals with progress
// @Summary Goals
// @Tags goals
// @Produce json
// @Success 200 {object} Response{data=GoalsView}
// @Router /metas [get]
func (h *GoalHandler) List(c *gin.Context) {
	goals, err := h.catalog.ListGoals(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, GoalsView{Goals: goals, Flash: popFlash(c)})
}

// CreateForm adds a goal from the page form
// @Summary Add goal (form)
// @Tags goals
// @Accept x-www-form-urlencoded
// @Param name formData string true "name"
// @Param target_amount formData string true "target amount"
// @Param current_amount formData string false "amount already saved"
// @Param start_date formData string false "start date"
// @Param end_date formData string false "end date"
// @Param category_id formData string false "category id"
// @Success 303 "redirect to /metas"
// @Router /metas [post]
func (h *GoalHandler) CreateForm(c *gin.Context) {
	var req GoalRequest
	submitForm(c, goalsPath, "Meta criada!", &req, func(userID uint) error {
		_, err := h.create(c, userID, &req)
		return err
	})
}

// Create adds a goal
// @Summary Add goal
// @Tags goals
// @Accept json
// @Produce json
// @Param request body GoalRequest true "goal"
// @Success 200 {object} Response{data=CreatedView}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /api/meta [post]
func (h *GoalHandler) Create(c *gin.Context) {
	var req GoalRequest
	submitJSON(c, "Meta criada!", &req, func(userID uint) (uint, error) {
		return h.create(c, userID, &req)
	})
}
