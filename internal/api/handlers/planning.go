package handlers

import (
	"net/http"

	"garden-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlanningHandler handles HTTP requests for garden planning
type PlanningHandler struct {
	planningService service.PlanningServiceInterface
}

// NewPlanningHandler creates a new planning handler
func NewPlanningHandler(planningService service.PlanningServiceInterface) *PlanningHandler {
	return &PlanningHandler{
		planningService: planningService,
	}
}

// GenerateCompanionList handles POST /garden/companion-list
// @Summary Generate a companion planting list
// @Description Fill the garden capacity with the selected plants and compatible companions
// @Tags garden
// @Accept json
// @Produce json
// @Param request body service.CompanionListRequest true "Selected plants and garden area"
// @Success 200 {object} service.CompanionListResponse "Planting list"
// @Failure 400 {object} ErrorResponse "Malformed request"
// @Failure 422 {object} ErrorResponse "Selection cannot be planted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /garden/companion-list [post]
func (h *PlanningHandler) GenerateCompanionList(c *gin.Context) {
	var req service.CompanionListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	resp, err := h.planningService.GenerateCompanionList(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to generate companion list")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GenerateGardenPlan handles POST /garden/plan
// @Summary Generate a garden layout
// @Description Build the planting list and place every plant on a square grid
// @Tags garden
// @Accept json
// @Produce json
// @Param request body service.CompanionListRequest true "Selected plants and garden area"
// @Success 200 {object} service.GardenPlanResponse "Garden plan"
// @Failure 400 {object} ErrorResponse "Malformed request"
// @Failure 422 {object} ErrorResponse "Selection cannot be planted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /garden/plan [post]
func (h *PlanningHandler) GenerateGardenPlan(c *gin.Context) {
	var req service.GardenPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	resp, err := h.planningService.GenerateGardenPlan(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to generate garden plan")
		return
	}

	c.JSON(http.StatusOK, resp)
}
