package service

import (
	"errors"
	"fmt"
	"strings"

	"food-donation-backend/internal/auth"
	"food-donation-backend/internal/config"
	"food-donation-backend/internal/database/models"
	apperrors "food-donation-backend/internal/errors"
	"food-donation-backend/internal/logger"
	"food-donation-backend/internal/mailer"
	"food-donation-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles registration, login and verification workflows
type UserService struct {
	repo        repository.UserRepositoryInterface
	authService *auth.AuthService
	mail        mailer.Mailer
	cfg         *config.Config
	validator   *validator.Validate
	log         *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(
	repo repository.UserRepositoryInterface,
	authService *auth.AuthService,
	mail mailer.Mailer,
	cfg *config.Config,
	validator *validator.Validate,
) *UserService {
	return &UserService{
		repo:        repo,
		authService: authService,
		mail:        mail,
		cfg:         cfg,
		validator:   validator,
		log:         logger.New().WithField("component", "user_service"),
	}
}

// RegisterUserRequest represents the request to register a user
type RegisterUserRequest struct {
	FirstName       string `json:"firstName" validate:"required,min=2,max=20"`
	LastName        string `json:"lastName" validate:"required,min=2,max=20"`
	PhoneNumber     string `json:"phoneNumber" validate:"required,len=10,numeric"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required,min=8,password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Country         string `json:"country" validate:"required,max=100"`
	Address         string `json:"address,omitempty" validate:"max=200"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse represents the sanitized user returned by user operations.
// Password hash and email token never leave the service layer.
type UserResponse struct {
	ID          uuid.UUID       `json:"id"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	PhoneNumber string          `json:"phoneNumber"`
	Email       string          `json:"email"`
	Country     string          `json:"country"`
	Address     string          `json:"address,omitempty"`
	IsVerified  bool            `json:"isVerified"`
	Role        models.UserRole `json:"role"`
	CreatedOn   string          `json:"createdOn"`
}

// LoginResult carries the signed bearer token alongside the user
type LoginResult struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// Register validates the payload, creates an unverified user with a hashed
// password and a fresh email token, and sends the verification mail
// best-effort. No partial writes happen on validation failure.
func (s *UserService) Register(req *RegisterUserRequest) (*UserResponse, error) {
	req.Email = NormalizeEmail(req.Email)

	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationList(err)
	}

	// Friendly pre-check; the unique index on email is the real guarantee
	// against two concurrent registrations both passing this point.
	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, &ValidationListError{Errors: []FieldError{
			{Field: "email", Message: "Email is already taken"},
		}}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	emailToken, err := auth.GenerateEmailToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	user := &models.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Password:    hashed,
		Country:     req.Country,
		Address:     req.Address,
		IsVerified:  false,
		EmailToken:  emailToken,
		Role:        models.UserRoleUser,
	}

	if err := s.repo.Create(user); err != nil {
		if apperrors.IsAlreadyExists(err) {
			// Lost the race against a concurrent registration.
			return nil, &ValidationListError{Errors: []FieldError{
				{Field: "email", Message: "Email is already taken"},
			}}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.sendVerificationEmail(user.Email, emailToken)

	return s.toResponse(user), nil
}

// Login authenticates a user and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *UserService) Login(req *LoginRequest) (*LoginResult, error) {
	req.Email = NormalizeEmail(req.Email)

	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationList(err)
	}

	user, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.authService.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResult{
		Token: "Bearer " + token,
		User:  s.toResponse(user),
	}, nil
}

// Profile returns the sanitized user record for the given id
func (s *UserService) Profile(userID uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return s.toResponse(user), nil
}

// VerifyAccount flips isVerified for the user holding the token. The flip and
// the lookup are a single conditional update, and the token stays in place so
// repeating the link after success still reports success.
func (s *UserService) VerifyAccount(token string) error {
	if token == "" {
		return apperrors.ErrVerificationToken
	}

	rows, err := s.repo.VerifyByToken(token)
	if err != nil {
		return fmt.Errorf("failed to verify account: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrVerificationToken
	}
	return nil
}

// ResendConfirmationEmail re-sends the verification mail for an unverified
// account, generating a fresh token when none is stored.
func (s *UserService) ResendConfirmationEmail(userID uuid.UUID) error {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.IsVerified {
		return apperrors.ErrAlreadyVerified
	}

	if user.EmailToken == "" {
		token, err := auth.GenerateEmailToken()
		if err != nil {
			return fmt.Errorf("failed to generate verification token: %w", err)
		}
		user.EmailToken = token
		if err := s.repo.Update(user); err != nil {
			return fmt.Errorf("failed to store verification token: %w", err)
		}
	}

	subject, body := mailer.VerificationEmail(s.cfg.FrontendURI, user.EmailToken)
	if err := s.mail.Send(user.Email, subject, body); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

// sendVerificationEmail is best-effort: delivery failure is logged and the
// registration response is unaffected.
func (s *UserService) sendVerificationEmail(email, token string) {
	subject, body := mailer.VerificationEmail(s.cfg.FrontendURI, token)
	if err := s.mail.Send(email, subject, body); err != nil {
		s.log.WithError(err).WithField("email", email).Error("failed to send verification email")
	}
}

func (s *UserService) toResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Email:       user.Email,
		Country:     user.Country,
		Address:     user.Address,
		IsVerified:  user.IsVerified,
		Role:        user.Role,
		CreatedOn:   user.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// NormalizeEmail lowercases and trims an email address before any lookup or write
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
