package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GadgetStatus string

const (
	GadgetStatusAvailable      GadgetStatus = "Available"
	GadgetStatusDeployed       GadgetStatus = "Deployed"
	GadgetStatusDestroyed      GadgetStatus = "Destroyed"
	GadgetStatusDecommissioned GadgetStatus = "Decommissioned"
)

// AllGadgetStatuses lists the canonical status values in display order.
var AllGadgetStatuses = []GadgetStatus{
	GadgetStatusAvailable,
	GadgetStatusDeployed,
	GadgetStatusDestroyed,
	GadgetStatusDecommissioned,
}

// Valid reports whether s is one of the canonical status values.
func (s GadgetStatus) Valid() bool {
	switch s {
	case GadgetStatusAvailable, GadgetStatusDeployed, GadgetStatusDestroyed, GadgetStatusDecommissioned:
		return true
	}
	return false
}

type Gadget struct {
	ID                        uuid.UUID    `gorm:"type:uuid;primarykey" json:"id"`
	Name                      string       `gorm:"type:varchar(255);not null" json:"name"`
	Codename                  string       `gorm:"type:varchar(255);uniqueIndex;not null" json:"codename"`
	Status                    GadgetStatus `gorm:"type:varchar(20);not null;default:'Available'" json:"status"`
	MissionSuccessProbability int          `gorm:"not null" json:"missionSuccessProbability"`
	DecommissionedAt          *time.Time   `json:"decommissionedAt"`
	CreatedAt                 time.Time    `json:"createdAt"`
	UpdatedAt                 time.Time    `json:"updatedAt"`
}

// BeforeCreate assigns a UUID primary key when the caller did not set one.
func (g *Gadget) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
