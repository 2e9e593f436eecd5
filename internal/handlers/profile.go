package handlers

import (
	"net/http"

	"github.com/Nomenandrianina/fleet-master/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	errLoadProfile = "failed to load profile"
	errSaveProfile = "failed to save profile"
)

// @Summary      Get account profile
// @Description  Returns the default record until something was saved.
// @Tags         profile
// @Produce      json
// @Success      200  {object}  models.Profile
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/profile [get]
// @Security     BearerAuth
func (h *Handler) getProfile(c *gin.Context) {
	p, err := h.services.Profile.Load(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadProfile, "profile_load_failed", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Replace account profile
// @Description  Whole-record replace; no partial updates.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body  models.Profile  true  "Profile record"
// @Success      200  {object}  models.Profile
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/profile [put]
// @Security     BearerAuth
func (h *Handler) updateProfile(c *gin.Context) {
	var p models.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.services.Profile.Save(c.Request.Context(), p); err != nil {
		h.logAndJSONError(c, http.StatusBadRequest, errSaveProfile+": "+err.Error(), "profile_save_failed", err)
		return
	}
	c.JSON(http.StatusOK, p)
}
