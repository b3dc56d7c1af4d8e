package api

import (
	"errors"
	"net/http"

	reqdto "room-booking-api/internal/handler/dto/request"
	resdto "room-booking-api/internal/handler/dto/response"
	"room-booking-api/internal/usecase/commands"
	"room-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BuildingHandler struct {
	buildingCommands commands.BuildingCommands
	buildingQueries  queries.BuildingQueries
}

func NewBuildingHandler(buildingCommands commands.BuildingCommands, buildingQueries queries.BuildingQueries) *BuildingHandler {
	return &BuildingHandler{
		buildingCommands: buildingCommands,
		buildingQueries:  buildingQueries,
	}
}

// @Summary List buildings
// @Tags buildings
// @Produce json
// @Success 200 {array} resdto.BuildingResponse
// @Router /buildings [get]
func (h *BuildingHandler) ListBuildings(c *gin.Context) {
	views, err := h.buildingQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBuildingViews(views))
}

// @Summary Get building
// @Tags buildings
// @Produce json
// @Param id path int true "Building ID"
// @Success 200 {object} resdto.BuildingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /buildings/{id} [get]
func (h *BuildingHandler) GetBuilding(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid building ID format",
		})
		return
	}

	view, err := h.buildingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBuildingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Building not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBuildingView(view))
}

// @Summary Create building
// @Tags buildings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BuildingRequest true "Building request"
// @Success 201 {object} resdto.BuildingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /buildings [post]
func (h *BuildingHandler) CreateBuilding(c *gin.Context) {
	var req reqdto.BuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.buildingCommands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBuildingView(view))
}

// @Summary Update building
// @Tags buildings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Building ID"
// @Param request body reqdto.BuildingRequest true "Building request"
// @Success 200 {object} resdto.BuildingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /buildings/{id} [put]
func (h *BuildingHandler) UpdateBuilding(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid building ID format",
		})
		return
	}

	var req reqdto.BuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.buildingCommands.Update(c.Request.Context(), id, req.ToParams())
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBuildingView(view))
}

// @Summary Delete building
// @Tags buildings
// @Security BearerAuth
// @Param id path int true "Building ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /buildings/{id} [delete]
func (h *BuildingHandler) DeleteBuilding(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid building ID format",
		})
		return
	}

	if err := h.buildingCommands.Delete(c.Request.Context(), id); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BuildingHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBuildingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Building not found",
		})
	case errors.Is(err, commands.ErrInvalidBuildingInput):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid building data",
		})
	case errors.Is(err, commands.ErrBuildingInUse):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Building has rooms and cannot be deleted",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
