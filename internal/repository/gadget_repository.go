package repository

import (
	"github.com/VamsiKrishnaThota03/imf-gadget-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormGadgetRepository is a GORM implementation of GadgetRepository
type GormGadgetRepository struct {
	db *gorm.DB
}

// NewGadgetRepository creates a new GadgetRepository
func NewGadgetRepository(db *gorm.DB) GadgetRepository {
	return &GormGadgetRepository{db: db}
}

// Create creates a new gadget
func (r *GormGadgetRepository) Create(gadget *models.Gadget) error {
	return r.db.Create(gadget).Error
}

// FindByID finds a gadget by ID
func (r *GormGadgetRepository) FindByID(id uuid.UUID) (*models.Gadget, error) {
	var gadget models.Gadget
	if err := r.db.Where("id = ?", id).First(&gadget).Error; err != nil {
		return nil, err
	}
	return &gadget, nil
}

// List retrieves gadgets matching the filter, newest first
func (r *GormGadgetRepository) List(filter GadgetFilter) ([]models.Gadget, error) {
	var gadgets []models.Gadget

	query := r.db.Model(&models.Gadget{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if err := query.Order("created_at DESC").Find(&gadgets).Error; err != nil {
		return nil, err
	}

	return gadgets, nil
}

// Update updates a gadget
func (r *GormGadgetRepository) Update(gadget *models.Gadget) error {
	return r.db.Save(gadget).Error
}
