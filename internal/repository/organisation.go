package repository

import (
	"food-donation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganisationRepository handles database operations for organisations
type OrganisationRepository struct {
	db *gorm.DB
}

// NewOrganisationRepository creates a new organisation repository
func NewOrganisationRepository(db *gorm.DB) *OrganisationRepository {
	return &OrganisationRepository{db: db}
}

// Create creates a new organisation
func (r *OrganisationRepository) Create(org *models.Organisation) error {
	return r.db.Create(org).Error
}

// GetByIDForUser retrieves an organisation by ID, scoped to the owning user.
// The owner filter lives in the query itself so a foreign id never matches.
func (r *OrganisationRepository) GetByIDForUser(id, userID uuid.UUID) (*models.Organisation, error) {
	var org models.Organisation
	err := r.db.First(&org, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByUserID retrieves all organisations owned by the given user
func (r *OrganisationRepository) GetByUserID(userID uuid.UUID) ([]models.Organisation, error) {
	var orgs []models.Organisation
	err := r.db.Order("created_at DESC").Find(&orgs, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}
