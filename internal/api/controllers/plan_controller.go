package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// GeneratePlan godoc
// @Summary Generate a travel plan
// @Description Generate a full AI itinerary for the authenticated user and persist it
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.GeneratePlanRequest true "Plan generation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/generate [post]
func (p *PlanController) GeneratePlan(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId := c.GetString("user_id")

	plan, err := p.planService.GeneratePlan(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Travel plan generated successfully")
}

// GetMyPlans godoc
// @Summary Get the authenticated user's plans
// @Description Fetch all travel plans for the authenticated user, newest first
// @Tags Plans
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans [get]
func (p *PlanController) GetMyPlans(c *gin.Context) {
	userId := c.GetString("user_id")

	plans, err := p.planService.GetPlansByUserId(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Travel plans fetched successfully")
}

// GetPlanById godoc
// @Summary Get a plan by ID
// @Description Fetch a single travel plan by its ID
// @Tags Plans
// @Accept json
// @Produce json
// @Param planId path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{planId} [get]
func (p *PlanController) GetPlanById(c *gin.Context) {
	planId := c.Param("planId")
	if planId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	plan, err := p.planService.GetPlanById(c.Request.Context(), planId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Travel plan fetched successfully")
}

// DeletePlan godoc
// @Summary Delete a plan
// @Description Delete one of the authenticated user's travel plans
// @Tags Plans
// @Accept json
// @Produce json
// @Param planId path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{planId} [delete]
func (p *PlanController) DeletePlan(c *gin.Context) {
	planId := c.Param("planId")
	if planId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	userId := c.GetString("user_id")

	if err := p.planService.DeletePlan(c.Request.Context(), planId, userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Travel plan deleted successfully")
}
