package repository

import (
	"github.com/VamsiKrishnaThota03/imf-gadget-api/internal/models"
	"github.com/google/uuid"
)

// GadgetRepository defines the interface for gadget data access
type GadgetRepository interface {
	// Create creates a new gadget
	Create(gadget *models.Gadget) error

	// FindByID finds a gadget by ID
	FindByID(id uuid.UUID) (*models.Gadget, error)

	// List retrieves gadgets matching the filter, newest first
	List(filter GadgetFilter) ([]models.Gadget, error)

	// Update updates a gadget
	Update(gadget *models.Gadget) error
}

// GadgetFilter holds filtering options for listing gadgets
type GadgetFilter struct {
	Status *models.GadgetStatus
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}
