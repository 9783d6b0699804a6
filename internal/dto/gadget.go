package dto

import (
	"fmt"
	"time"

	"github.com/VamsiKrishnaThota03/imf-gadget-api/internal/models"
	"github.com/google/uuid"
)

// GadgetListItemDTO represents a gadget in list responses. The mission
// success probability is rendered as a percentage string for display; the
// stored value stays numeric.
type GadgetListItemDTO struct {
	ID                        uuid.UUID           `json:"id"`
	Name                      string              `json:"name"`
	Codename                  string              `json:"codename"`
	Status                    models.GadgetStatus `json:"status"`
	MissionSuccessProbability string              `json:"missionSuccessProbability"`
	DecommissionedAt          *time.Time          `json:"decommissionedAt"`
	CreatedAt                 time.Time           `json:"createdAt"`
	UpdatedAt                 time.Time           `json:"updatedAt"`
}

// GadgetListResponse represents the gadget listing payload
type GadgetListResponse struct {
	Count   int                 `json:"count"`
	Gadgets []GadgetListItemDTO `json:"gadgets"`
}

// SelfDestructResponse represents the self-destruct payload. The
// confirmation code exists only in this response and is never persisted.
type SelfDestructResponse struct {
	Message          string        `json:"message"`
	ConfirmationCode string        `json:"confirmationCode"`
	Gadget           models.Gadget `json:"gadget"`
}

// ToGadgetListItemDTO converts a Gadget model to GadgetListItemDTO
func ToGadgetListItemDTO(gadget models.Gadget) GadgetListItemDTO {
	return GadgetListItemDTO{
		ID:                        gadget.ID,
		Name:                      gadget.Name,
		Codename:                  gadget.Codename,
		Status:                    gadget.Status,
		MissionSuccessProbability: fmt.Sprintf("%d%%", gadget.MissionSuccessProbability),
		DecommissionedAt:          gadget.DecommissionedAt,
		CreatedAt:                 gadget.CreatedAt,
		UpdatedAt:                 gadget.UpdatedAt,
	}
}

// ToGadgetListResponse converts a slice of gadgets to GadgetListResponse
func ToGadgetListResponse(gadgets []models.Gadget) GadgetListResponse {
	items := make([]GadgetListItemDTO, len(gadgets))
	for i, gadget := range gadgets {
		items[i] = ToGadgetListItemDTO(gadget)
	}

	return GadgetListResponse{
		Count:   len(items),
		Gadgets: items,
	}
}
