package repository

import (
	"food-donation-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	VerifyByToken(token string) (int64, error)
	Update(user *models.User) error
}

// OrganisationRepositoryInterface defines the interface for organisation repository operations
type OrganisationRepositoryInterface interface {
	Create(org *models.Organisation) error
	GetByIDForUser(id, userID uuid.UUID) (*models.Organisation, error)
	GetByUserID(userID uuid.UUID) ([]models.Organisation, error)
}
