package testutils

import (
	"time"

	"food-donation-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The email carries part of
// the UUID so repeated factory calls never collide on the unique index.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		ID:          id,
		FirstName:   "Jane",
		LastName:    "Donor",
		PhoneNumber: "0123456789",
		Email:       "jane." + id.String()[:8] + "@example.com",
		Password:    "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Country:     "Kenya",
		IsVerified:  false,
		EmailToken:  id.String()[:32] + id.String()[:32],
		Role:        models.UserRoleUser,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// Verified creates a user whose email has already been confirmed
func (f *UserFactory) Verified() *models.User {
	user := f.Create()
	user.IsVerified = true
	user.EmailToken = ""
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithEmailToken sets a custom verification token for the user
func (f *UserFactory) WithEmailToken(token string) *models.User {
	user := f.Create()
	user.EmailToken = token
	return user
}

// OrganisationFactory provides methods to create test Organisation data
type OrganisationFactory struct{}

// NewOrganisationFactory creates a new OrganisationFactory
func NewOrganisationFactory() *OrganisationFactory {
	return &OrganisationFactory{}
}

// Create creates a test Organisation with default values
func (f *OrganisationFactory) Create() *models.Organisation {
	return &models.Organisation{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Name:        "Test Food Bank",
		Type:        models.OrganisationTypeNonprofit,
		Email:       "contact@testfoodbank.org",
		PhoneNumber: "0123456789",
		Address:     "1 Warehouse Road",
		Active:      false,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// WithUser sets the owning user for the organisation
func (f *OrganisationFactory) WithUser(userID uuid.UUID) *models.Organisation {
	org := f.Create()
	org.UserID = userID
	return org
}

// WithName sets a custom name for the organisation
func (f *OrganisationFactory) WithName(name string) *models.Organisation {
	org := f.Create()
	org.Name = name
	return org
}

// WithType sets a custom organisation type
func (f *OrganisationFactory) WithType(t models.OrganisationType) *models.Organisation {
	org := f.Create()
	org.Type = t
	return org
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Organisation *OrganisationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Organisation: NewOrganisationFactory(),
	}
}

// CreateVerifiedUserWithOrganisation creates a verified user owning one organisation
func (fs *FactorySet) CreateVerifiedUserWithOrganisation() (*models.User, *models.Organisation) {
	user := fs.User.Verified()
	org := fs.Organisation.WithUser(user.ID)
	return user, org
}
