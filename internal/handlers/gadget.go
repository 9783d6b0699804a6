package handlers

import (
	"errors"
	"net/http"

	"github.com/VamsiKrishnaThota03/imf-gadget-api/internal/dto"
	apierrors "github.com/VamsiKrishnaThota03/imf-gadget-api/internal/errors"
	"github.com/VamsiKrishnaThota03/imf-gadget-api/internal/models"
	"github.com/VamsiKrishnaThota03/imf-gadget-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GadgetHandler coordinates gadget-related HTTP handlers.
type GadgetHandler struct {
	gadgetService *services.GadgetService
}

// NewGadgetHandler creates a new GadgetHandler.
func NewGadgetHandler(gadgetService *services.GadgetService) *GadgetHandler {
	return &GadgetHandler{
		gadgetService: gadgetService,
	}
}

// ListGadgets returns all gadgets, optionally filtered by status.
func (h *GadgetHandler) ListGadgets(c *gin.Context) {
	gadgets, err := h.gadgetService.ListGadgets(c.Query("status"))
	if err != nil {
		respondGadgetError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGadgetListResponse(gadgets))
}

// CreateGadget creates a new gadget. Codename and mission success
// probability are always generated server-side.
func (h *GadgetHandler) CreateGadget(c *gin.Context) {
	type CreateGadgetRequest struct {
		Name   string              `json:"name" binding:"required"`
		Status models.GadgetStatus `json:"status"`
	}

	var req CreateGadgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	gadget, err := h.gadgetService.CreateGadget(services.CreateGadgetInput{
		Name:   req.Name,
		Status: req.Status,
	})
	if err != nil {
		respondGadgetError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gadget)
}

// UpdateGadget patches a gadget. Only name and status are patchable;
// other fields present in the body are ignored.
func (h *GadgetHandler) UpdateGadget(c *gin.Context) {
	id, ok := parseGadgetID(c)
	if !ok {
		return
	}

	type UpdateGadgetRequest struct {
		Name   *string              `json:"name"`
		Status *models.GadgetStatus `json:"status"`
	}

	var req UpdateGadgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	gadget, err := h.gadgetService.UpdateGadget(id, services.UpdateGadgetInput{
		Name:   req.Name,
		Status: req.Status,
	})
	if err != nil {
		respondGadgetError(c, err)
		return
	}

	c.JSON(http.StatusOK, gadget)
}

// DeleteGadget decommissions a gadget instead of removing it.
func (h *GadgetHandler) DeleteGadget(c *gin.Context) {
	id, ok := parseGadgetID(c)
	if !ok {
		return
	}

	gadget, err := h.gadgetService.DecommissionGadget(id)
	if err != nil {
		respondGadgetError(c, err)
		return
	}

	c.JSON(http.StatusOK, gadget)
}

// SelfDestruct destroys a gadget and returns an ephemeral confirmation code.
func (h *GadgetHandler) SelfDestruct(c *gin.Context) {
	id, ok := parseGadgetID(c)
	if !ok {
		return
	}

	gadget, confirmationCode, err := h.gadgetService.SelfDestructGadget(id)
	if err != nil {
		respondGadgetError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SelfDestructResponse{
		Message:          "Self-destruct sequence initiated",
		ConfirmationCode: confirmationCode,
		Gadget:           *gadget,
	})
}

// parseGadgetID reads the :id path parameter. A malformed UUID cannot
// identify any gadget, so it reports not found.
func parseGadgetID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Gadget not found")
		return uuid.Nil, false
	}
	return id, true
}

func respondGadgetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrGadgetNotFound):
		apierrors.NotFound(c, "Gadget not found")
	case errors.Is(err, services.ErrNameRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidStatus):
		apierrors.BadRequest(c, "Invalid status. Must be one of: Available, Deployed, Destroyed, Decommissioned")
	case errors.Is(err, services.ErrCodenameTaken):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
