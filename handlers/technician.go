package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	technicianRepo "fixhub/database/repository/technician"
	"fixhub/services/technician"
	"fixhub/utils"
)

// TechnicianHandler serves read-only technician profiles.
type TechnicianHandler struct {
	Service technician.Service
	Logger  *zap.Logger
}

// NewTechnicianHandler constructs a TechnicianHandler.
func NewTechnicianHandler(svc technician.Service, logger *zap.Logger) *TechnicianHandler {
	return &TechnicianHandler{Service: svc, Logger: logger}
}

// GetTechnicianByID returns one technician profile.
func (h *TechnicianHandler) GetTechnicianByID(c *gin.Context) {
	id := c.Param("id")
	tech, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, technicianRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "technician not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch technician", err.Error())
		return
	}
	c.JSON(http.StatusOK, tech)
}
