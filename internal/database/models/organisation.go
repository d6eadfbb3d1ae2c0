package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganisationType enumerates the kinds of organisations that donate or receive food
type OrganisationType string

const (
	OrganisationTypeNonprofit        OrganisationType = "nonprofit"
	OrganisationTypeFarm             OrganisationType = "farm"
	OrganisationTypeSupermarket      OrganisationType = "supermarket"
	OrganisationTypeFoodManufacturer OrganisationType = "food_manufacturer"
	OrganisationTypeAdmin            OrganisationType = "admin"
)

// ValidOrganisationType reports whether t is one of the known organisation types
func ValidOrganisationType(t OrganisationType) bool {
	switch t {
	case OrganisationTypeNonprofit, OrganisationTypeFarm, OrganisationTypeSupermarket,
		OrganisationTypeFoodManufacturer, OrganisationTypeAdmin:
		return true
	}
	return false
}

// Organisation represents an organisation registered by a verified user
type Organisation struct {
	ID          uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID        `json:"userId" gorm:"type:uuid;not null;index"`
	Name        string           `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Type        OrganisationType `json:"organisationType" gorm:"type:varchar(30);not null" validate:"required"`
	Email       string           `json:"email" gorm:"not null;size:255" validate:"required,email,max=255"`
	PhoneNumber string           `json:"phoneNumber" gorm:"not null;size:20" validate:"required,max=20"`
	Address     string           `json:"address" gorm:"not null;size:200" validate:"required,max=200"`
	Active      bool             `json:"active" gorm:"not null;default:false"`
	CreatedAt   time.Time        `json:"createdOn"`
	UpdatedAt   time.Time        `json:"-"`
}

// TableName returns the table name for Organisation
func (Organisation) TableName() string {
	return "organisations"
}

// BeforeCreate sets the UUID if not already set
func (o *Organisation) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
