package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/VamsiKrishnaThota03/imf-gadget-api/internal/models"
	"github.com/VamsiKrishnaThota03/imf-gadget-api/internal/repository"
	"github.com/VamsiKrishnaThota03/imf-gadget-api/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGadgetNotFound = errors.New("gadget not found")
	ErrNameRequired   = errors.New("name is required")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrCodenameTaken  = errors.New("generated codename already exists")
)

// GadgetService handles gadget business logic
type GadgetService struct {
	gadgetRepo repository.GadgetRepository
}

// NewGadgetService creates a new GadgetService
func NewGadgetService(gadgetRepo repository.GadgetRepository) *GadgetService {
	return &GadgetService{
		gadgetRepo: gadgetRepo,
	}
}

// ListGadgets returns gadgets, newest first, optionally filtered by status.
// An unknown status fails before the store is touched.
func (s *GadgetService) ListGadgets(status string) ([]models.Gadget, error) {
	filter := repository.GadgetFilter{}

	if status != "" {
		gadgetStatus := models.GadgetStatus(status)
		if !gadgetStatus.Valid() {
			return nil, ErrInvalidStatus
		}
		filter.Status = &gadgetStatus
	}

	gadgets, err := s.gadgetRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list gadgets: %w", err)
	}

	return gadgets, nil
}

// GetGadget returns a single gadget by ID.
func (s *GadgetService) GetGadget(id uuid.UUID) (*models.Gadget, error) {
	gadget, err := s.gadgetRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGadgetNotFound
		}
		return nil, fmt.Errorf("failed to find gadget: %w", err)
	}

	return gadget, nil
}

// CreateGadgetInput represents input for creating a gadget
type CreateGadgetInput struct {
	Name   string
	Status models.GadgetStatus
}

// CreateGadget creates a gadget with a server-generated codename and
// mission success probability. A caller-supplied codename is never used.
// A codename collision surfaces as an error; uniqueness is enforced only
// by the database constraint, with no retry.
func (s *GadgetService) CreateGadget(input CreateGadgetInput) (*models.Gadget, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	if input.Status == "" {
		input.Status = models.GadgetStatusAvailable
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	gadget := &models.Gadget{
		Name:                      input.Name,
		Codename:                  utils.GenerateCodename(),
		Status:                    input.Status,
		MissionSuccessProbability: utils.GenerateMissionSuccessProbability(),
	}

	if err := s.gadgetRepo.Create(gadget); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCodenameTaken
		}
		return nil, fmt.Errorf("failed to create gadget: %w", err)
	}

	return gadget, nil
}

// UpdateGadgetInput represents input for updating a gadget. Only the
// fields present here are patchable; id, codename, mission success
// probability and decommission time are immutable through updates.
type UpdateGadgetInput struct {
	Name   *string
	Status *models.GadgetStatus
}

// UpdateGadget patches an existing gadget field by field. Any canonical
// status may be written regardless of the current one; there is no
// transition graph.
func (s *GadgetService) UpdateGadget(id uuid.UUID, input UpdateGadgetInput) (*models.Gadget, error) {
	gadget, err := s.gadgetRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGadgetNotFound
		}
		return nil, fmt.Errorf("failed to find gadget: %w", err)
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrNameRequired
		}
		gadget.Name = *input.Name
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		gadget.Status = *input.Status
	}

	if err := s.gadgetRepo.Update(gadget); err != nil {
		return nil, fmt.Errorf("failed to update gadget: %w", err)
	}

	return gadget, nil
}

// DecommissionGadget marks a gadget as decommissioned instead of removing
// it. The decommission timestamp records the first transition and is not
// overwritten by repeat calls.
func (s *GadgetService) DecommissionGadget(id uuid.UUID) (*models.Gadget, error) {
	gadget, err := s.gadgetRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGadgetNotFound
		}
		return nil, fmt.Errorf("failed to find gadget: %w", err)
	}

	gadget.Status = models.GadgetStatusDecommissioned
	if gadget.DecommissionedAt == nil {
		now := time.Now()
		gadget.DecommissionedAt = &now
	}

	if err := s.gadgetRepo.Update(gadget); err != nil {
		return nil, fmt.Errorf("failed to decommission gadget: %w", err)
	}

	return gadget, nil
}

// SelfDestructGadget marks a gadget as destroyed and returns a one-off
// confirmation code. The code is advisory only and never persisted; the
// decommission timestamp is left untouched.
func (s *GadgetService) SelfDestructGadget(id uuid.UUID) (*models.Gadget, string, error) {
	gadget, err := s.gadgetRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrGadgetNotFound
		}
		return nil, "", fmt.Errorf("failed to find gadget: %w", err)
	}

	confirmationCode := utils.GenerateConfirmationCode()

	gadget.Status = models.GadgetStatusDestroyed

	if err := s.gadgetRepo.Update(gadget); err != nil {
		return nil, "", fmt.Errorf("failed to self-destruct gadget: %w", err)
	}

	return gadget, confirmationCode, nil
}
