package service

import (
	"errors"
	"fmt"

	"food-donation-backend/internal/database/models"
	apperrors "food-donation-backend/internal/errors"
	"food-donation-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganisationService handles business logic for organisations
type OrganisationService struct {
	repo      repository.OrganisationRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewOrganisationService creates a new organisation service
func NewOrganisationService(
	repo repository.OrganisationRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	validator *validator.Validate,
) *OrganisationService {
	return &OrganisationService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateOrganisationRequest represents the request to register an organisation
type CreateOrganisationRequest struct {
	Name        string                  `json:"name" validate:"required,max=100"`
	Type        models.OrganisationType `json:"organisationType" validate:"required"`
	Email       string                  `json:"email" validate:"required,email,max=255"`
	PhoneNumber string                  `json:"phoneNumber" validate:"required,max=20"`
	Address     string                  `json:"address" validate:"required,max=200"`
}

// OrganisationResponse represents the response for organisation operations
type OrganisationResponse struct {
	ID          uuid.UUID               `json:"id"`
	UserID      uuid.UUID               `json:"userId"`
	Name        string                  `json:"name"`
	Type        models.OrganisationType `json:"organisationType"`
	Email       string                  `json:"email"`
	PhoneNumber string                  `json:"phoneNumber"`
	Address     string                  `json:"address"`
	Active      bool                    `json:"active"`
	CreatedOn   string                  `json:"createdOn"`
}

// Create registers an organisation owned by the given user. The requester must
// exist and be verified; both checks short-circuit before any write.
func (s *OrganisationService) Create(userID uuid.UUID, req *CreateOrganisationRequest) (*OrganisationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationList(err)
	}

	if !models.ValidOrganisationType(req.Type) {
		return nil, &ValidationListError{Errors: []FieldError{
			{Field: "organisationType", Message: "Organisation type must be one of nonprofit, farm, supermarket, food_manufacturer, admin"},
		}}
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.IsVerified {
		return nil, apperrors.ErrUserNotVerified
	}

	org := &models.Organisation{
		UserID:      user.ID,
		Name:        req.Name,
		Type:        req.Type,
		Email:       NormalizeEmail(req.Email),
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}

	if err := s.repo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organisation: %w", err)
	}

	return s.toResponse(org), nil
}

// ListForUser returns all organisations owned by the given user
func (s *OrganisationService) ListForUser(userID uuid.UUID) ([]OrganisationResponse, error) {
	orgs, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organisations: %w", err)
	}

	responses := make([]OrganisationResponse, 0, len(orgs))
	for i := range orgs {
		responses = append(responses, *s.toResponse(&orgs[i]))
	}
	return responses, nil
}

// GetForUser fetches one organisation by id, scoped to the owning user so a
// different authenticated user asking for the same id gets not-found.
func (s *OrganisationService) GetForUser(orgID, userID uuid.UUID) (*OrganisationResponse, error) {
	org, err := s.repo.GetByIDForUser(orgID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganisationNotFound
		}
		return nil, fmt.Errorf("failed to get organisation: %w", err)
	}
	return s.toResponse(org), nil
}

func (s *OrganisationService) toResponse(org *models.Organisation) *OrganisationResponse {
	return &OrganisationResponse{
		ID:          org.ID,
		UserID:      org.UserID,
		Name:        org.Name,
		Type:        org.Type,
		Email:       org.Email,
		PhoneNumber: org.PhoneNumber,
		Address:     org.Address,
		Active:      org.Active,
		CreatedOn:   org.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
