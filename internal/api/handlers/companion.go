package handlers

import (
	"net/http"

	"garden-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CompanionHandler handles HTTP requests for the companion dataset
type CompanionHandler struct {
	companionService service.CompanionServiceInterface
}

// NewCompanionHandler creates a new companion handler
func NewCompanionHandler(companionService service.CompanionServiceInterface) *CompanionHandler {
	return &CompanionHandler{
		companionService: companionService,
	}
}

// ListPlants handles GET /plants
// @Summary List plants
// @Description List every plant id present in the companion dataset
// @Tags plants
// @Produce json
// @Success 200 {object} service.PlantListResponse "Plant ids"
// @Failure 503 {object} ErrorResponse "Dataset not loaded"
// @Router /plants [get]
func (h *CompanionHandler) ListPlants(c *gin.Context) {
	resp, err := h.companionService.ListPlants(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list plants")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPlantCompanions handles GET /plants/:id/companions
// @Summary Get plant relationships
// @Description Get the plants a plant helps, is helped by and must avoid
// @Tags plants
// @Produce json
// @Param id path string true "Plant id"
// @Success 200 {object} service.PlantCompanionsResponse "Relationships"
// @Failure 404 {object} ErrorResponse "Plant not in dataset"
// @Failure 422 {object} ErrorResponse "Invalid plant id"
// @Router /plants/{id}/companions [get]
func (h *CompanionHandler) GetPlantCompanions(c *gin.Context) {
	resp, err := h.companionService.GetPlantCompanions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get plant companions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CheckCompatibility handles GET /compatibility
// @Summary Check two plants
// @Description Report whether two plants are forbidden together and their compatibility score
// @Tags plants
// @Produce json
// @Param a query string true "First plant id"
// @Param b query string true "Second plant id"
// @Success 200 {object} service.CompatibilityResponse "Compatibility"
// @Failure 400 {object} ErrorResponse "Missing query parameter"
// @Failure 422 {object} ErrorResponse "Invalid plant id"
// @Router /compatibility [get]
func (h *CompanionHandler) CheckCompatibility(c *gin.Context) {
	a, b := c.Query("a"), c.Query("b")
	if a == "" || b == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "query parameters a and b are required"})
		return
	}

	resp, err := h.companionService.CheckCompatibility(c.Request.Context(), a, b)
	if err != nil {
		respondError(c, err, "Failed to check compatibility")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ReloadDataset handles POST /admin/dataset/reload
// @Summary Reload the companion dataset
// @Description Re-read the configured dataset source and swap it in for new requests
// @Tags admin
// @Produce json
// @Success 200 {object} service.DatasetStatusResponse "Reloaded dataset"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Reload failed, previous dataset kept"
// @Security BearerAuth
// @Router /admin/dataset/reload [post]
func (h *CompanionHandler) ReloadDataset(c *gin.Context) {
	resp, err := h.companionService.ReloadDataset(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to reload companion dataset")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DatasetStatus handles GET /admin/dataset
// @Summary Dataset status
// @Description Describe the loaded companion dataset
// @Tags admin
// @Produce json
// @Success 200 {object} service.DatasetStatusResponse "Dataset status"
// @Security BearerAuth
// @Router /admin/dataset [get]
func (h *CompanionHandler) DatasetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.companionService.DatasetStatus())
}
