package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user workflows
type UserServiceInterface interface {
	Register(req *RegisterUserRequest) (*UserResponse, error)
	Login(req *LoginRequest) (*LoginResult, error)
	Profile(userID uuid.UUID) (*UserResponse, error)
	VerifyAccount(token string) error
	ResendConfirmationEmail(userID uuid.UUID) error
}

// OrganisationServiceInterface defines the interface for organisation workflows
type OrganisationServiceInterface interface {
	Create(userID uuid.UUID, req *CreateOrganisationRequest) (*OrganisationResponse, error)
	ListForUser(userID uuid.UUID) ([]OrganisationResponse, error)
	GetForUser(orgID, userID uuid.UUID) (*OrganisationResponse, error)
}
