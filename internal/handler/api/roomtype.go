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

type RoomTypeHandler struct {
	roomTypeCommands commands.RoomTypeCommands
	roomTypeQueries  queries.RoomTypeQueries
}

func NewRoomTypeHandler(roomTypeCommands commands.RoomTypeCommands, roomTypeQueries queries.RoomTypeQueries) *RoomTypeHandler {
	return &RoomTypeHandler{
		roomTypeCommands: roomTypeCommands,
		roomTypeQueries:  roomTypeQueries,
	}
}

// @Summary List room types
// @Tags room-types
// @Produce json
// @Success 200 {array} resdto.RoomTypeResponse
// @Router /room-types [get]
func (h *RoomTypeHandler) ListRoomTypes(c *gin.Context) {
	views, err := h.roomTypeQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomTypeViews(views))
}

// @Summary Get room type
// @Tags room-types
// @Produce json
// @Param id path int true "Room type ID"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /room-types/{id} [get]
func (h *RoomTypeHandler) GetRoomType(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room type ID format",
		})
		return
	}

	view, err := h.roomTypeQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room type not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomTypeView(view))
}

// @Summary Create room type
// @Tags room-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RoomTypeRequest true "Room type request"
// @Success 201 {object} resdto.RoomTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /room-types [post]
func (h *RoomTypeHandler) CreateRoomType(c *gin.Context) {
	var req reqdto.RoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.roomTypeCommands.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomTypeView(view))
}

// @Summary Update room type
// @Tags room-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room type ID"
// @Param request body reqdto.RoomTypeRequest true "Room type request"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /room-types/{id} [put]
func (h *RoomTypeHandler) UpdateRoomType(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room type ID format",
		})
		return
	}

	var req reqdto.RoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.roomTypeCommands.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomTypeView(view))
}

// @Summary Delete room type
// @Tags room-types
// @Security BearerAuth
// @Param id path int true "Room type ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /room-types/{id} [delete]
func (h *RoomTypeHandler) DeleteRoomType(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room type ID format",
		})
		return
	}

	if err := h.roomTypeCommands.Delete(c.Request.Context(), id); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RoomTypeHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRoomTypeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room type not found",
		})
	case errors.Is(err, commands.ErrInvalidRoomTypeInput):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room type data",
		})
	case errors.Is(err, commands.ErrRoomTypeAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{
			"error": "A room type with this name already exists",
		})
	case errors.Is(err, commands.ErrRoomTypeInUse):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Room type has rooms and cannot be deleted",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
